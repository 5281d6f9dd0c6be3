package telemetry

import (
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// attackRecord captures what the engine needs from an originating
// PlayerAttack event. Events are copied into records at index build time so
// the enrichment passes never hold references into the scanned slice.
type attackRecord struct {
	time    time.Time
	timeOK  bool
	weapon  *AttackWeapon
	stack   *int
}

// equipRecord is one armor equip or pickup, with the item id already
// translated to its display name so slots classify by the "Helmet"/"Vest"
// substring.
type equipRecord struct {
	actor string
	item  string
	at    time.Time
}

// Correlator enriches the subject events of one match using side indices
// built once from the full event sequence. It is single-use and not safe for
// concurrent use; the pipeline runs one match at a time.
type Correlator struct {
	attacks   map[int]attackRecord
	attackIDs map[int]struct{}
	equips    []equipRecord
	start     time.Time
	hasStart  bool
	log       *logrus.Entry
}

// NewCorrelator builds the attack index, the attack-id universe and the
// equip index from the full chronological event sequence of a match.
func NewCorrelator(events []Event) *Correlator {
	c := &Correlator{
		attacks:   make(map[int]attackRecord),
		attackIDs: map[int]struct{}{NoAttackID: {}},
		log:       logrus.WithField("component", "correlator"),
	}

	if raw, ok := MatchStartTime(events); ok {
		if at, err := time.Parse(time.RFC3339, raw); err == nil {
			c.start, c.hasStart = at, true
		}
	}

	for i := range events {
		e := &events[i]
		switch e.Action {
		case ActionPlayerAttack:
			if e.AttackID == nil {
				continue
			}
			c.attackIDs[*e.AttackID] = struct{}{}
			rec := attackRecord{weapon: e.Weapon, stack: e.FireWeaponStackCount}
			if at, err := e.Timestamp(); err == nil {
				rec.time, rec.timeOK = at, true
			}
			c.attacks[*e.AttackID] = rec
		case ActionItemEquip, ActionItemPickupFromCarepackage, ActionItemPickupFromLootbox:
			if e.Character == nil || e.Item == nil {
				continue
			}
			name, ok := Armors[e.Item.ItemID]
			if !ok {
				continue // not an armor piece
			}
			at, err := e.Timestamp()
			if err != nil {
				c.log.WithField("time", e.Time).Debug("skipping equip event with bad timestamp")
				continue
			}
			c.equips = append(c.equips, equipRecord{actor: e.Character.Name, item: name, at: at})
		}
	}

	return c
}

// Enrich runs the full pass pipeline over the subject events in place and
// returns the same slice: armor reconstruction, execution distance, bullet
// speed, name normalization, weapon back-fill and timestamp normalization.
func (c *Correlator) Enrich(subjects []Event) []Event {
	for i := range subjects {
		c.deriveCombatState(&subjects[i])
	}
	for i := range subjects {
		normalizeNames(&subjects[i])
	}
	for i := range subjects {
		c.backfillWeapon(&subjects[i])
		c.relativizeTimestamp(&subjects[i])
	}
	return subjects
}

// deriveCombatState fills the armor slots, distance and bullet speed for one
// subject event. Armor slots always end up populated: "bare" when no
// qualifying equip exists, never empty.
func (c *Correlator) deriveCombatState(e *Event) {
	e.Helmet = BareArmor()
	e.Vest = BareArmor()
	e.VictimHelmet = BareArmor()
	e.VictimVest = BareArmor()

	// The -1 sentinel means no distinct originating attack (melee, fall
	// damage). It never joins attack or equip lookups: armor stays bare and
	// speed stays absent.
	if e.Victim == nil || e.AttackID == nil || *e.AttackID == NoAttackID {
		return
	}

	at, err := e.Timestamp()
	if err != nil {
		// One event's timestamp defect must not abort the match; only its
		// derived fields are skipped.
		c.log.WithField("time", e.Time).Debug("skipping derived fields, bad subject timestamp")
		return
	}

	c.reconstructArmor(e, at)

	if e.Finisher != nil {
		d := e.Finisher.Location.DistanceTo(e.Victim.Location)
		e.Distance = &d
	}

	c.deriveBulletSpeed(e, at)
}

// reconstructArmor folds all equip events not later than the subject event
// and keeps, per slot, the chronologically latest qualifying equip. There is
// deliberately no lower time bound: an equip from minutes earlier still wins
// when nothing later replaced it (last-known-state semantics).
func (c *Correlator) reconstructArmor(e *Event, at time.Time) {
	var attackerHelmetAt, attackerVestAt, victimHelmetAt, victimVestAt time.Time

	for _, eq := range c.equips {
		if eq.at.After(at) {
			continue
		}
		if e.Attacker != nil && eq.actor == e.Attacker.Name {
			if strings.Contains(eq.item, "Helmet") && !eq.at.Before(attackerHelmetAt) {
				attackerHelmetAt = eq.at
				e.Helmet = &Armor{Condition: true, Item: eq.item}
			}
			if strings.Contains(eq.item, "Vest") && !eq.at.Before(attackerVestAt) {
				attackerVestAt = eq.at
				e.Vest = &Armor{Condition: true, Item: eq.item}
			}
		}
		if eq.actor == e.Victim.Name {
			if strings.Contains(eq.item, "Helmet") && !eq.at.Before(victimHelmetAt) {
				victimHelmetAt = eq.at
				e.VictimHelmet = &Armor{Condition: true, Item: eq.item}
			}
			if strings.Contains(eq.item, "Vest") && !eq.at.Before(victimVestAt) {
				victimVestAt = eq.at
				e.VictimVest = &Armor{Condition: true, Item: eq.item}
			}
		}
	}
}

// deriveBulletSpeed computes attacker→victim distance and bullet speed from
// the originating attack's timestamp, clamped by the weapon class ceiling.
func (c *Correlator) deriveBulletSpeed(e *Event, at time.Time) {
	attack, ok := c.attacks[*e.AttackID]
	if !ok || !attack.timeOK || e.Attacker == nil {
		return
	}

	travel := at.Sub(attack.time).Seconds()
	if travel < 0 {
		travel = -travel
	}
	if travel == 0 {
		return // simultaneous records carry no speed information
	}

	distance := e.Attacker.Location.DistanceTo(e.Victim.Location)
	if distance == 0 {
		return
	}
	e.Distance = &distance

	speed := distance / travel

	causer := ""
	if e.DamageCauserName != nil {
		causer = *e.DamageCauserName
	}
	weapon := Weapons.Translate(causer)
	class := WeaponClasses.Translate(weapon)

	if speed > MaxBulletSpeed(class) {
		// Implausible: almost always event-ordering noise. Fall back to the
		// weapon's tabulated speed; weapons with no entry keep speed absent.
		if fallback, ok := DefaultBulletSpeed(weapon); ok {
			e.BulletSpeed = &fallback
		} else {
			e.BulletSpeed = nil
		}
		return
	}
	e.BulletSpeed = &speed
}

// normalizeNames translates the human-facing codes on a subject event and on
// its nested supplemental damage blocks.
func normalizeNames(e *Event) {
	if e.DamageCauserName != nil {
		translated := Weapons.Translate(*e.DamageCauserName)
		e.DamageCauserName = &translated
	}
	if e.DamageTypeCategory != nil {
		translated := DamageTypes.Translate(*e.DamageTypeCategory)
		e.DamageTypeCategory = &translated
	}
	if e.DamageReason != nil {
		translated := HitLocations.Translate(*e.DamageReason)
		e.DamageReason = &translated
	}
	if e.KillerDamageInfo != nil {
		translateDamageInfo(e.KillerDamageInfo)
	}
	if e.FinishDamageInfo != nil {
		translateDamageInfo(e.FinishDamageInfo)
	}
	if e.DBNODamageInfo != nil {
		translateDamageInfo(e.DBNODamageInfo)
	}
}

// backfillWeapon copies the originating attack's weapon descriptor and fire
// stack count onto subject events that carry none of their own, translating
// the weapon and attachment names on the way.
func (c *Correlator) backfillWeapon(e *Event) {
	if e.AttackID == nil {
		return
	}
	if _, ok := c.attackIDs[*e.AttackID]; !ok {
		return
	}
	attack, ok := c.attacks[*e.AttackID]
	if !ok {
		return
	}

	if e.Weapon == nil && attack.weapon != nil {
		weapon := &AttackWeapon{
			Weapon:      Weapons.TranslateKeep(attack.weapon.Weapon),
			Attachments: make([]string, len(attack.weapon.Attachments)),
		}
		for i, attachment := range attack.weapon.Attachments {
			weapon.Attachments[i] = Attachments.TranslateKeep(attachment)
		}
		e.Weapon = weapon
	}
	if e.FireWeaponStackCount == nil && attack.stack != nil {
		stack := *attack.stack
		e.FireWeaponStackCount = &stack
	}
}

// relativizeTimestamp replaces the absolute event time with the elapsed
// seconds since the MatchDefinition event, as a numeric string. Events with
// unparseable times keep their raw value.
func (c *Correlator) relativizeTimestamp(e *Event) {
	if !c.hasStart || e.Time == "" {
		return
	}
	at, err := e.Timestamp()
	if err != nil {
		return
	}
	seconds := float64(at.Sub(c.start).Milliseconds()) / 1000.0
	e.Time = strconv.FormatFloat(seconds, 'f', -1, 64)
}
