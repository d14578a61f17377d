// Package config centralizes all tunable game parameters.
// Values are fixed; difficulty does not scale beyond these constants.
package config

import (
	"image/color"
	"time"
)

// Spawning
const (
	SpawnNormalEnemy = 2000 * time.Millisecond
	SpawnEliteEnemy  = 5000 * time.Millisecond
	SpawnBoss        = 180000 * time.Millisecond // Not scheduled, see object.EnemySpawner.BossDue
	SpawnMargin      = 50.0                      // Horizontal keep-out from the field edges
)

// Power-ups
const (
	PowerUpDropChance = 0.2
	MaxWeaponLevel    = 3
	PowerUpSize       = 20.0
	PowerUpSpeed      = 2.0
)

// Player
const (
	InitialLives         = 3
	InitialMissiles      = 3
	InvincibleTime       = 2000 * time.Millisecond
	PlayerSize           = 50.0
	PlayerSpeed          = 8.0
	PlayerShootInterval  = 200 * time.Millisecond
	PlayerBottomOffset   = 100.0 // Distance from the bottom edge at spawn
	PlayerInvincibleFade = 0.5   // Sprite alpha while invincible
)

// Projectiles and missiles
const (
	ProjectileSpeed = 7.0
	MissileWidth    = 10.0
	MissileHeight   = 30.0
	MissileSpeed    = 7.0
)

// Enemies
const (
	NormalEnemySize     = 40.0
	NormalEnemySpeed    = 1.0
	NormalEnemyHealth   = 2
	EliteEnemySize      = 60.0
	EliteEnemySpeed     = 1.5
	EliteEnemyHealth    = 8
	BossEnemySize       = 100.0
	BossEnemySpeed      = 1.0
	BossEnemyHealth     = 200
	EnemyOutlineWidth   = 2.0
	EliteShootInterval  = 1000 * time.Millisecond
	BossModeInterval    = 2000 * time.Millisecond
	EliteWanderMinDelay = 1000 * time.Millisecond
	EliteWanderJitter   = 2000 * time.Millisecond
	HealthBarHeight     = 5.0
	HealthBarOffset     = 10.0
)

// Scoring
const (
	ScoreNormalEnemy = 2
	ScoreEliteEnemy  = 5
	ScoreBossEnemy   = ScoreNormalEnemy // No distinct boss reward defined
)

// Background
const (
	StarCount = 100
	StarSpeed = 1.5
)

// Frame pacing for terminal frontends
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// Terminal rendering. The logical field is derived from the terminal size
// so that one half-block pixel covers FieldScale x FieldScale field units.
const (
	FieldScale      = 6
	MaxRenderWidth  = 160 // Terminal columns
	MaxRenderHeight = 60  // Terminal rows
)

// Desktop window defaults
const (
	DesktopFieldWidth  = 480
	DesktopFieldHeight = 720
)

// Colors
var (
	ColorBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	ColorStar       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorNormalShot = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	ColorScatter    = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	ColorLaser      = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	ColorMissile    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorOutline    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorHealthBack = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	ColorHealth     = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	ColorText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorOverlay    = color.RGBA{R: 0, G: 0, B: 0, A: 128}
)
