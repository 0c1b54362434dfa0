package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type TransformComponentSpec struct {
	Position Vec3Spec  `yaml:"position"`
	Rotation Vec3Spec  `yaml:"rotation"`
	Scale    *Vec3Spec `yaml:"scale"`
}

type ColliderComponentSpec struct {
	Shape    string   `yaml:"shape"`
	Size     Vec3Spec `yaml:"size"`
	Offset   Vec3Spec `yaml:"offset"`
	Disabled bool     `yaml:"disabled"`
}

type HealthComponentSpec struct {
	Max     float64 `yaml:"max"`
	Current float64 `yaml:"current"`
}

type ModelComponentSpec struct {
	Name      string    `yaml:"name"`
	Primitive string    `yaml:"primitive"`
	Color     YAMLColor `yaml:"color"`
	Hidden    bool      `yaml:"hidden"`
	Fallback  struct {
		Primitive string    `yaml:"primitive"`
		Color     YAMLColor `yaml:"color"`
	} `yaml:"fallback"`
}

type PlayerComponentSpec struct {
	Speed          float64 `yaml:"speed"`
	DashSpeed      float64 `yaml:"dash_speed"`
	DashDuration   float64 `yaml:"dash_duration"`
	DashCooldown   float64 `yaml:"dash_cooldown"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	Gravity        float64 `yaml:"gravity"`
	TurnRate       float64 `yaml:"turn_rate"`
	FaceCamera     bool    `yaml:"face_camera"`
	ProbeOffset    float64 `yaml:"probe_offset"`
	ProbeDistance  float64 `yaml:"probe_distance"`
	InvincibleTime float64 `yaml:"invincible_time"`
	HitFlash       float64 `yaml:"hit_flash"`
}

type BossComponentSpec struct {
	DisplayName     string   `yaml:"display_name"`
	TriggerRadius   float64  `yaml:"trigger_radius"`
	FlyHeight       float64  `yaml:"fly_height"`
	RestHeight      float64  `yaml:"rest_height"`
	RestYaw         float64  `yaml:"rest_yaw"`
	TurnRate        float64  `yaml:"turn_rate"`
	TakeoffDelay    float64  `yaml:"takeoff_delay"`
	TakeoffDuration float64  `yaml:"takeoff_duration"`
	ClimbDelay      float64  `yaml:"climb_delay"`
	LandDuration    float64  `yaml:"land_duration"`
	AttackInterval  float64  `yaml:"attack_interval"`
	FirstShotDelay  float64  `yaml:"first_shot_delay"`
	MuzzleOffset    Vec3Spec `yaml:"muzzle_offset"`
	HitFlash        float64  `yaml:"hit_flash"`
	DeathDuration   float64  `yaml:"death_duration"`
	DeathRoll       float64  `yaml:"death_roll"`
	BarDespawnDelay float64  `yaml:"bar_despawn_delay"`
	DespawnDelay    float64  `yaml:"despawn_delay"`
	FireballPrefab  string   `yaml:"fireball_prefab"`
	Animations      struct {
		Idle   string `yaml:"idle"`
		Fly    string `yaml:"fly"`
		Attack string `yaml:"attack"`
		Death  string `yaml:"death"`
	} `yaml:"animations"`
}

type ProjectileComponentSpec struct {
	Speed            float64  `yaml:"speed"`
	MaxLife          float64  `yaml:"max_life"`
	Damage           float64  `yaml:"damage"`
	HitRange         float64  `yaml:"hit_range"`
	FloorY           float64  `yaml:"floor_y"`
	AimOffset        Vec3Spec `yaml:"aim_offset"`
	DefaultDirection Vec3Spec `yaml:"default_direction"`
	TrailInterval    float64  `yaml:"trail_interval"`
	TrailLife        float64  `yaml:"trail_life"`
	TrailBack        float64  `yaml:"trail_back"`
	ExplosionScale   float64  `yaml:"explosion_scale"`
	ExplosionLife    float64  `yaml:"explosion_life"`
}

type CameraComponentSpec struct {
	Yaw         float64 `yaml:"yaw"`
	Pitch       float64 `yaml:"pitch"`
	MinPitch    float64 `yaml:"min_pitch"`
	MaxPitch    float64 `yaml:"max_pitch"`
	Distance    float64 `yaml:"distance"`
	Height      float64 `yaml:"height"`
	Sensitivity float64 `yaml:"sensitivity"`
}

type SnowflakeComponentSpec struct {
	FallSpeed float64 `yaml:"fall_speed"`
	SpinSpeed float64 `yaml:"spin_speed"`
	FloorY    float64 `yaml:"floor_y"`
	SpawnMinY float64 `yaml:"spawn_min_y"`
	SpawnMaxY float64 `yaml:"spawn_max_y"`
	Area      float64 `yaml:"area"`
}

type HealthBarComponentSpec struct {
	Label  string   `yaml:"label"`
	Offset Vec3Spec `yaml:"offset"`
	Width  float64  `yaml:"width"`
}

type BossScriptComponentSpec struct {
	Path string `yaml:"path"`
}
