// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06

	GroundY       = 580.0 // Линия земли, на ней стоят города
	TurretY       = 570.0
	CityCount     = 6
	CityWidth     = 30.0
	CityHeight    = 14.0
	TurretWidth   = 30.0
	TurretHeight  = 20.0
	TurretEdgeGap = 50.0 // Отступ крайних батарей от края экрана

	CityHitHalfSize   = 10.0 // Полуширина зоны поражения города
	TurretHitHalfSize = 20.0 // Полуширина зоны поражения батареи

	InitialRocketsToSpawn = 3
	RoundBaseRockets      = 3
	RoundRocketIncrement  = 1

	SpawnBaseChance     = 0.007
	SpawnChancePerRound = 0.002

	RocketBaseSpeed     = 0.001  // Прирост progress за кадр
	RocketSpeedPerRound = 0.0003 // Прибавка за каждый раунд после первого
	RocketSpeedJitter   = 0.0005

	MissileSpeed = 0.02

	ExplosionMaxRadius       = 40.0
	SecondaryExplosionFactor = 0.5
	ExplosionGrowthRate      = 1.0 // Единиц радиуса за кадр

	RocketKillReward = 20
	AmmoBonusPerUnit = 5
	WinScore         = 1000

	RocketTrailWidth  = 1.5
	ProjectileRadius  = 2.5
	IndicatorOffsetX  = 24
	IndicatorRadius   = 8.0
	ClickCooldown     = 150 // мс, защита от двойного клика по кнопкам оверлея
	OverlayButtonW    = 180
	OverlayButtonH    = 40
	HUDLineHeight     = 16
	HUDMarginX        = 10
	AmmoLabelOffsetY  = 18
	ExplosionAlphaMin = 90
)

var (
	BackgroundColor    = color.RGBA{8, 8, 24, 255}
	GroundColor        = color.RGBA{96, 72, 32, 255}
	CityColor          = color.RGBA{60, 170, 230, 255}
	TurretColor        = color.RGBA{50, 205, 50, 255}
	RocketColor        = color.RGBA{230, 50, 50, 255}
	RocketTrailColor   = color.RGBA{160, 40, 40, 200}
	MissileColor       = color.RGBA{240, 240, 240, 255}
	MissileTrailColor  = color.RGBA{90, 160, 255, 200}
	ExplosionColor     = color.RGBA{255, 200, 60, 255}
	SecondaryColor     = color.RGBA{255, 120, 40, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextDarkColor      = color.RGBA{20, 20, 30, 255}
	OverlayColor       = color.RGBA{0, 0, 0, 160}
	ButtonColor        = color.RGBA{70, 130, 180, 230}
	ButtonHoverColor   = color.RGBA{100, 160, 210, 240}
	IndicatorStroke    = color.RGBA{240, 240, 240, 255}
	PlayingStateColor  = color.RGBA{70, 130, 180, 220}
	RoundEndStateColor = color.RGBA{194, 178, 128, 255}
	WonStateColor      = color.RGBA{50, 205, 50, 255}
	LostStateColor     = color.RGBA{220, 60, 60, 220}
	IdleStateColor     = color.RGBA{128, 128, 128, 255}
)
