package config

import (
	"errors"
	"fmt"
)

// Units are pixels and seconds. Y grows downward, so upward velocity is negative.

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Movement
	MoveSpeed         float64 `yaml:"move_speed"`
	JumpForce         float64 `yaml:"jump_force"`
	FallMultiplier    float64 `yaml:"fall_multiplier"`
	LowJumpMultiplier float64 `yaml:"low_jump_multiplier"`
	GroundedEpsilon   float64 `yaml:"grounded_epsilon"` // |vy| below this counts as landed

	// Dash
	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`

	// Attack
	AttackDuration float64 `yaml:"attack_duration"`
	ComboResetTime float64 `yaml:"combo_reset_time"`

	// Parry
	ParryDuration   float64 `yaml:"parry_duration"`
	ParryCooldown   float64 `yaml:"parry_cooldown"`
	ParryAirGravity float64 `yaml:"parry_air_gravity"` // gravity scale while parrying airborne

	Health        int     `yaml:"health"`
	DeathDuration float64 `yaml:"death_duration"`
}

// EnemyConfig contains enemy AI configuration values
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Speed             float64 `yaml:"speed"`
	DetectRange       float64 `yaml:"detect_range"`
	AttackRange       float64 `yaml:"attack_range"`
	AttackRangeBuffer float64 `yaml:"attack_range_buffer"` // hysteresis for chained attacks
	AmbushRangeFactor float64 `yaml:"ambush_range_factor"` // attack range multiplier against a dashing player

	// Attack sequence
	WindupDuration float64 `yaml:"windup_duration"`
	StrikeDelay    float64 `yaml:"strike_delay"`
	StrikeActive   float64 `yaml:"strike_active"`
	AttackCooldown float64 `yaml:"attack_cooldown"`

	StunDuration   float64 `yaml:"stun_duration"`
	DeathDuration  float64 `yaml:"death_duration"`
	KnockbackForce float64 `yaml:"knockback_force"`
	KnockbackLift  float64 `yaml:"knockback_lift"`

	Health int `yaml:"health"`
}

// HitboxConfig describes a melee trigger volume placed in front of its owner.
type HitboxConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // gap between owner edge and hitbox
	Damage int     `yaml:"damage"`
}

// CombatConfig contains hitbox configuration per actor kind
type CombatConfig struct {
	PlayerHitbox HitboxConfig `yaml:"player_hitbox"`
	EnemyHitbox  HitboxConfig `yaml:"enemy_hitbox"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// Tuning is the full set of gameplay numbers the simulation reads.
type Tuning struct {
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Combat  CombatConfig  `yaml:"combat"`
	Physics PhysicsConfig `yaml:"physics"`
}

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

var ErrInvalidTuning = errors.New("invalid tuning")

func Default() Tuning {
	return Tuning{
		Player: PlayerConfig{
			Width:             16,
			Height:            32,
			MoveSpeed:         220,
			JumpForce:         600,
			FallMultiplier:    2.0,
			LowJumpMultiplier: 1.8,
			GroundedEpsilon:   1.0,
			DashSpeed:         720,
			DashDuration:      0.18,
			DashCooldown:      0.6,
			AttackDuration:    0.3,
			ComboResetTime:    0.8,
			ParryDuration:     0.25,
			ParryCooldown:     0.75,
			ParryAirGravity:   0.2,
			Health:            1,
			DeathDuration:     1.0,
		},
		Enemy: EnemyConfig{
			Width:             16,
			Height:            32,
			Speed:             120,
			DetectRange:       260,
			AttackRange:       48,
			AttackRangeBuffer: 12,
			AmbushRangeFactor: 1.6,
			WindupDuration:    0.45,
			StrikeDelay:       0.1,
			StrikeActive:      0.15,
			AttackCooldown:    0.7,
			StunDuration:      1.2,
			DeathDuration:     0.8,
			KnockbackForce:    320,
			KnockbackLift:     240,
			Health:            1,
		},
		Combat: CombatConfig{
			PlayerHitbox: HitboxConfig{Width: 28, Height: 24, Offset: 0, Damage: 1},
			EnemyHitbox:  HitboxConfig{Width: 32, Height: 24, Offset: 0, Damage: 1},
		},
		Physics: PhysicsConfig{
			Gravity:      1800,
			MaxFallSpeed: 900,
		},
	}
}

// Validate reports the first value that would break the simulation.
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"player.width", t.Player.Width},
		{"player.height", t.Player.Height},
		{"player.dash_duration", t.Player.DashDuration},
		{"player.attack_duration", t.Player.AttackDuration},
		{"player.parry_duration", t.Player.ParryDuration},
		{"enemy.width", t.Enemy.Width},
		{"enemy.height", t.Enemy.Height},
		{"enemy.attack_range", t.Enemy.AttackRange},
		{"enemy.ambush_range_factor", t.Enemy.AmbushRangeFactor},
		{"combat.player_hitbox.width", t.Combat.PlayerHitbox.Width},
		{"combat.player_hitbox.height", t.Combat.PlayerHitbox.Height},
		{"combat.enemy_hitbox.width", t.Combat.EnemyHitbox.Width},
		{"combat.enemy_hitbox.height", t.Combat.EnemyHitbox.Height},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"player.dash_cooldown", t.Player.DashCooldown},
		{"player.parry_cooldown", t.Player.ParryCooldown},
		{"player.combo_reset_time", t.Player.ComboResetTime},
		{"player.death_duration", t.Player.DeathDuration},
		{"enemy.windup_duration", t.Enemy.WindupDuration},
		{"enemy.strike_delay", t.Enemy.StrikeDelay},
		{"enemy.strike_active", t.Enemy.StrikeActive},
		{"enemy.attack_cooldown", t.Enemy.AttackCooldown},
		{"enemy.stun_duration", t.Enemy.StunDuration},
		{"enemy.death_duration", t.Enemy.DeathDuration},
		{"enemy.attack_range_buffer", t.Enemy.AttackRangeBuffer},
		{"physics.gravity", t.Physics.Gravity},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, p.name, p.value)
		}
	}

	if t.Player.Health < 1 || t.Enemy.Health < 1 {
		return fmt.Errorf("%w: health must be at least 1", ErrInvalidTuning)
	}
	return nil
}
