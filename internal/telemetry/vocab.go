package telemetry

// UnknownName is substituted whenever a code is missing from a lookup table.
const UnknownName = "Unknown"

// Table maps opaque game-internal codes to human-readable names. Tables are
// package-level constant data, loaded once and never mutated, so concurrent
// reads need no synchronization.
type Table map[string]string

// Translate resolves code to its display name, falling back to UnknownName.
func (t Table) Translate(code string) string {
	if name, ok := t[code]; ok {
		return name
	}
	return UnknownName
}

// TranslateKeep resolves code to its display name, keeping the raw code when
// it is not in the table. Used for attachment lists, whose additionalInfo
// entries are not always attachment ids.
func (t Table) TranslateKeep(code string) string {
	if name, ok := t[code]; ok {
		return name
	}
	return code
}

// Weapon class speed ceilings, in meters per second. A computed bullet speed
// above the class ceiling is physically implausible (event-ordering noise)
// and is replaced by the weapon's tabulated default speed.
const (
	maxSpeedSMGPistol = 500
	maxSpeedRifle     = 1000
	maxSpeedHPSniper  = 1500
	maxSpeedShotgun   = 700
)

// MaxBulletSpeed returns the plausibility ceiling for a weapon class.
// Unclassified weapons are unbounded.
func MaxBulletSpeed(class string) float64 {
	switch class {
	case "SMG", "Pistol":
		return maxSpeedSMGPistol
	case "DMR", "LMG", "Assault Rifle":
		return maxSpeedRifle
	case "HP Sniper":
		return maxSpeedHPSniper
	case "Shotgun":
		return maxSpeedShotgun
	default:
		return maxSpeedUnbounded
	}
}

const maxSpeedUnbounded = 1 << 30

// DefaultBulletSpeed returns the tabulated muzzle velocity for a translated
// weapon name. The second return is false for weapons with no entry.
func DefaultBulletSpeed(weapon string) (float64, bool) {
	speed, ok := defaultBulletSpeeds[weapon]
	return speed, ok
}

func translateDamageInfo(info *DamageInfo) {
	info.Weapon = Weapons.Translate(info.Weapon)
	info.DamageTypeCategory = DamageTypes.Translate(info.DamageTypeCategory)
	for i, attachment := range info.Attachments {
		info.Attachments[i] = Attachments.TranslateKeep(attachment)
	}
}
