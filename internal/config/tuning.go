// internal/config/tuning.go
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// WindowTuning sets the initial window size of the drivers.
type WindowTuning struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// FormationTuning controls the enemy grid and its lock-step movement.
type FormationTuning struct {
	Rows         int     `toml:"rows"`
	Cols         int     `toml:"cols"`
	CenterX      float64 `toml:"center_x"`
	CenterY      float64 `toml:"center_y"`
	EnemySize    float64 `toml:"enemy_size"`
	Spacing      float64 `toml:"spacing"`
	Timestep     float64 `toml:"timestep"`
	StepX        float64 `toml:"step_x"`
	StepY        float64 `toml:"step_y"`
	EdgeFraction float64 `toml:"edge_fraction"`
	LossFraction float64 `toml:"loss_fraction"`
}

// EnemyTuning controls enemy fire.
type EnemyTuning struct {
	TimerMax     float64 `toml:"timer_max"`
	ResetMin     float64 `toml:"reset_min"`
	ResetSpan    float64 `toml:"reset_span"`
	BulletSpeed  float64 `toml:"bullet_speed"`
	MuzzleOffset float64 `toml:"muzzle_offset"`
}

// PlayerTuning controls the ship.
type PlayerTuning struct {
	StartX      float64    `toml:"start_x"`
	StartY      float64    `toml:"start_y"`
	Size        float64    `toml:"size"`
	Speed       float64    `toml:"speed"`
	MinPos      [2]float64 `toml:"min_pos"`
	MaxPos      [2]float64 `toml:"max_pos"`
	ShotCadence float64    `toml:"shot_cadence"`
	MuzzleY     float64    `toml:"muzzle_y"`
	BulletSpeed float64    `toml:"bullet_speed"`
}

// BulletTuning controls projectile size.
type BulletTuning struct {
	Size float64 `toml:"size"`
}

// SessionTuning controls the simulation as a whole.
type SessionTuning struct {
	Seed         int64   `toml:"seed"`
	MaxDeltaTime float64 `toml:"max_delta_time"`
}

// Tuning is the full set of gameplay parameters. It can be loaded from a TOML file;
// anything the file leaves out keeps its default.
type Tuning struct {
	Window    WindowTuning    `toml:"window"`
	Formation FormationTuning `toml:"formation"`
	Enemy     EnemyTuning     `toml:"enemy"`
	Player    PlayerTuning    `toml:"player"`
	Bullet    BulletTuning    `toml:"bullet"`
	Session   SessionTuning   `toml:"session"`
}

// DefaultTuning returns the built-in parameters.
func DefaultTuning() *Tuning {
	return &Tuning{
		Window: WindowTuning{Width: ScreenWidth, Height: ScreenHeight},
		Formation: FormationTuning{
			Rows:         FormationRows,
			Cols:         FormationCols,
			CenterX:      FormationCenterX,
			CenterY:      FormationCenterY,
			EnemySize:    EnemySize,
			Spacing:      EnemySpacing,
			Timestep:     FormationTimestep,
			StepX:        FormationStepX,
			StepY:        FormationStepY,
			EdgeFraction: EdgeFraction,
			LossFraction: LossFraction,
		},
		Enemy: EnemyTuning{
			TimerMax:     ShootTimerMax,
			ResetMin:     ShootResetMin,
			ResetSpan:    ShootResetSpan,
			BulletSpeed:  EnemyBulletSpeed,
			MuzzleOffset: EnemyMuzzleOffset,
		},
		Player: PlayerTuning{
			StartX:      PlayerStartX,
			StartY:      PlayerStartY,
			Size:        PlayerSize,
			Speed:       PlayerSpeed,
			MinPos:      [2]float64{PlayerMinFracX, PlayerMinFracY},
			MaxPos:      [2]float64{PlayerMaxFracX, PlayerMaxFracY},
			ShotCadence: PlayerShotCadence,
			MuzzleY:     PlayerMuzzleY,
			BulletSpeed: PlayerBulletSpeed,
		},
		Bullet:  BulletTuning{Size: BulletSize},
		Session: SessionTuning{MaxDeltaTime: MaxDeltaTime},
	}
}

// LoadTuning reads a TOML file on top of the defaults.
func LoadTuning(path string) (*Tuning, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	t, err := ParseTuning(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTuning decodes TOML data on top of the defaults and validates the result.
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := toml.Unmarshal(data, t); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to unmarshal tuning at line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate rejects parameter sets the simulation cannot run with.
func (t *Tuning) Validate() error {
	switch {
	case t.Window.Width <= 0 || t.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", t.Window.Width, t.Window.Height)
	case t.Formation.Rows < 1 || t.Formation.Cols < 1:
		return fmt.Errorf("formation needs at least one row and column, got %dx%d", t.Formation.Rows, t.Formation.Cols)
	case t.Formation.EnemySize < 0 || t.Formation.Spacing < 0:
		return fmt.Errorf("enemy size and spacing must not be negative")
	case t.Player.Size < 0 || t.Bullet.Size < 0:
		return fmt.Errorf("player and bullet sizes must not be negative")
	case t.Formation.Timestep <= 0:
		return fmt.Errorf("formation timestep must be positive, got %v", t.Formation.Timestep)
	case t.Player.ShotCadence <= 0:
		return fmt.Errorf("shot cadence must be positive, got %v", t.Player.ShotCadence)
	case t.Enemy.TimerMax < 0 || t.Enemy.ResetMin < 0 || t.Enemy.ResetSpan < 0:
		return fmt.Errorf("enemy shoot cycle ranges must not be negative")
	case t.Session.MaxDeltaTime <= 0:
		return fmt.Errorf("max delta time must be positive, got %v", t.Session.MaxDeltaTime)
	}
	return nil
}
