// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	// Formation layout
	EnemySize        = 20.0
	EnemySpacing     = 20.0
	FormationRows    = 1
	FormationCols    = 4
	FormationCenterX = 0.0
	FormationCenterY = 250.0

	// Lock-step movement, evaluated every FormationTimestep simulated seconds
	FormationTimestep = 0.2
	FormationStepX    = 10.0
	FormationStepY    = 20.0
	EdgeFraction      = 0.4 // of the half width
	LossFraction      = 0.4 // of the half height

	// Enemy fire: timer drawn from [0, ShootTimerMax), reset from [ShootResetMin, ShootResetMin+ShootResetSpan)
	ShootTimerMax     = 10.0
	ShootResetMin     = 3.0
	ShootResetSpan    = 15.0
	EnemyBulletSpeed  = 90.0
	EnemyMuzzleOffset = 25.0

	// Player ship
	PlayerStartX      = 0.0
	PlayerStartY      = -300.0
	PlayerSize        = 20.0
	PlayerSpeed       = 120.0
	PlayerMinFracX    = -0.4
	PlayerMinFracY    = -0.4
	PlayerMaxFracX    = 0.4
	PlayerMaxFracY    = -0.4
	PlayerShotCadence = 0.5
	PlayerMuzzleY     = 30.0
	PlayerBulletSpeed = 140.0

	BulletSize = 10.0

	// Draw order
	BulletZ = 1.0
)

var (
	BackgroundColor   = color.RGBA{0, 0, 0, 255}
	EnemyColor        = color.RGBA{255, 0, 0, 255}
	EnemyBulletColor  = color.RGBA{255, 69, 0, 255}
	PlayerColor       = color.RGBA{240, 248, 255, 255}
	PlayerBulletColor = color.RGBA{255, 255, 0, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
)
