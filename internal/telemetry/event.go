package telemetry

import (
	"encoding/json"
	"math"
	"time"
)

// NoAttackID is the sentinel the telemetry feed uses when a damage or kill
// event has no distinct originating attack (melee, falls, bleed-outs).
const NoAttackID = -1

// unitsToMeters converts engine distance units to meters.
const unitsToMeters = 0.01

// Action is the discriminator of a telemetry event. The feed ships many more
// event kinds than we care about; everything outside the closed set below
// decodes as ActionUnknown and is dropped before processing.
type Action string

const (
	ActionPlayerTakeDamage          Action = "LogPlayerTakeDamage"
	ActionPlayerAttack              Action = "LogPlayerAttack"
	ActionPlayerMakeGroggy          Action = "LogPlayerMakeGroggy"
	ActionArmorDestroy              Action = "LogArmorDestroy"
	ActionPlayerKill                Action = "LogPlayerKillV2"
	ActionMatchDefinition           Action = "LogMatchDefinition"
	ActionPlayerCreate              Action = "LogPlayerCreate"
	ActionItemEquip                 Action = "LogItemEquip"
	ActionItemPickupFromCarepackage Action = "LogItemPickupFromCarepackage"
	ActionItemPickupFromLootbox     Action = "LogItemPickupFromLootbox"
	ActionUnknown                   Action = "Unknown"
)

// UnmarshalJSON classifies unrecognized action codes as ActionUnknown instead
// of failing, so schema drift in the feed degrades gracefully.
func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Action(s) {
	case ActionPlayerTakeDamage, ActionPlayerAttack, ActionPlayerMakeGroggy,
		ActionArmorDestroy, ActionPlayerKill, ActionMatchDefinition,
		ActionPlayerCreate, ActionItemEquip, ActionItemPickupFromCarepackage,
		ActionItemPickupFromLootbox:
		*a = Action(s)
	default:
		*a = ActionUnknown
	}
	return nil
}

// Event is one telemetry record. Which fields are populated depends on the
// Action; absent fields stay nil so "not present" is never confused with a
// real zero measurement. The four armor slots, Distance and BulletSpeed are
// derived during enrichment and are not part of the raw feed.
type Event struct {
	Action               Action        `json:"_T"`
	Time                 string        `json:"_D,omitempty"`
	AttackID             *int          `json:"attackId,omitempty"`
	Weapon               *AttackWeapon `json:"weapon"`
	FireWeaponStackCount *int          `json:"fireWeaponStackCount,omitempty"`
	Attacker             *Target       `json:"attacker,omitempty"`
	Victim               *Target       `json:"victim,omitempty"`
	DamageReason         *string       `json:"damageReason,omitempty"`
	Damage               *float64      `json:"damage,omitempty"`
	DamageTypeCategory   *string       `json:"damageTypeCategory,omitempty"`
	DamageCauserName     *string       `json:"damageCauserName,omitempty"`
	IsSuicide            *bool         `json:"isSuicide,omitempty"`
	DBNOMaker            *Target       `json:"dBNOMaker,omitempty"`
	DBNODamageInfo       *DamageInfo   `json:"dBNODamageInfo,omitempty"`
	Finisher             *Target       `json:"finisher,omitempty"`
	FinishDamageInfo     *DamageInfo   `json:"finishDamageInfo,omitempty"`
	Killer               *Target       `json:"killer,omitempty"`
	KillerDamageInfo     *DamageInfo   `json:"killerDamageInfo,omitempty"`
	Character            *Target       `json:"character,omitempty"`
	Item                 *EquipItem    `json:"item,omitempty"`
	Distance             *float64      `json:"distance"`
	BulletSpeed          *float64      `json:"bullet_speed"`
	Helmet               *Armor        `json:"helmet"`
	Vest                 *Armor        `json:"vest"`
	VictimHelmet         *Armor        `json:"victim_helmet"`
	VictimVest           *Armor        `json:"victim_vest"`
}

// Timestamp parses the event's ISO-8601 time.
func (e *Event) Timestamp() (time.Time, error) {
	return time.Parse(time.RFC3339, e.Time)
}

// Target is a combatant snapshot embedded in combat events. It is read-only:
// enrichment writes derived fields onto the owning Event, never back onto a
// Target.
type Target struct {
	Name              string   `json:"name"`
	TeamID            int      `json:"teamId"`
	Health            float64  `json:"health"`
	Ranking           int      `json:"ranking"`
	IndividualRanking int      `json:"individualRanking"`
	AccountID         string   `json:"accountId"`
	IsInVehicle       bool     `json:"isInVehicle"`
	Location          Location `json:"location"`
}

// Location is a 3D position in engine units.
type Location struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DistanceTo returns the Euclidean distance to other, in meters.
func (l Location) DistanceTo(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	dz := l.Z - other.Z
	return math.Sqrt(dx*dx+dy*dy+dz*dz) * unitsToMeters
}

// Armor describes one armor slot at the moment of an event. BareArmor is a
// real, reportable state: "no armor worn", not "unknown".
type Armor struct {
	Condition bool   `json:"condition"`
	Item      string `json:"item"`
}

// BareArmorItem is the item name reported when no qualifying equip event was
// found for a slot.
const BareArmorItem = "bare"

// BareArmor returns the intact no-armor default for a slot.
func BareArmor() *Armor {
	return &Armor{Condition: true, Item: BareArmorItem}
}

// AttackWeapon is the weapon descriptor carried by attack events.
type AttackWeapon struct {
	Weapon      string   `json:"itemId"`
	Attachments []string `json:"attachedItems"`
}

// EquipItem is the item descriptor on equip and pickup events.
type EquipItem struct {
	ItemID string `json:"itemId"`
}

// DamageInfo is the supplemental damage block nested in kill events for the
// killer, finisher and DBNO maker.
type DamageInfo struct {
	DamageReason       string   `json:"damageReason"`
	DamageTypeCategory string   `json:"damageTypeCategory"`
	Weapon             string   `json:"damageCauserName"`
	Attachments        []string `json:"additionalInfo"`
	Distance           float64  `json:"distance"`
}

// ParseEvents decodes a raw telemetry payload. Unknown event kinds survive
// decoding (as ActionUnknown) and are stripped by DropUnknown.
func ParseEvents(raw []byte) ([]Event, error) {
	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// DropUnknown filters out events that did not classify into the closed
// action set.
func DropUnknown(events []Event) []Event {
	kept := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Action != ActionUnknown {
			kept = append(kept, e)
		}
	}
	return kept
}
