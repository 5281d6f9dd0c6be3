package telemetry

import (
	"testing"
)

const (
	testStart = "2024-03-01T12:00:00.000Z"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func matchDefinition() Event {
	return Event{Action: ActionMatchDefinition, Time: testStart}
}

func attackEvent(id int, at, itemID string, attachments []string) Event {
	return Event{
		Action:   ActionPlayerAttack,
		Time:     at,
		AttackID: intPtr(id),
		Weapon:   &AttackWeapon{Weapon: itemID, Attachments: attachments},
	}
}

func equipEvent(actor, at, itemID string) Event {
	return Event{
		Action:    ActionItemEquip,
		Time:      at,
		Character: &Target{Name: actor},
		Item:      &EquipItem{ItemID: itemID},
	}
}

func TestEnrichArmorReconstruction(t *testing.T) {
	background := []Event{
		matchDefinition(),
		// The victim upgrades helmets; only the latest not-later equip
		// should survive the fold.
		equipEvent("bravo", "2024-03-01T12:00:01.000Z", "Item_Head_E_01_Lv1_C"),
		equipEvent("bravo", "2024-03-01T12:00:03.000Z", "Item_Head_F_02_Lv2_C"),
		// Equipped after the subject event, must not count.
		equipEvent("bravo", "2024-03-01T12:00:30.000Z", "Item_Head_G_01_Lv3_C"),
		// The attacker picked up a vest minutes before the fight. There is
		// no lower time bound: an old equip still wins when nothing later
		// replaced it.
		equipEvent("alpha", "2024-03-01T11:50:00.000Z", "Item_Armor_D_01_Lv1_C"),
		// A non-armor equip never reaches the equip index.
		equipEvent("bravo", "2024-03-01T12:00:02.000Z", "Item_Back_B_01_StartParachutePack_C"),
		attackEvent(101, "2024-03-01T12:00:09.000Z", "WeapAK47_C", nil),
	}

	subject := Event{
		Action:   ActionPlayerTakeDamage,
		Time:     "2024-03-01T12:00:10.000Z",
		AttackID: intPtr(101),
		Attacker: &Target{Name: "alpha"},
		Victim:   &Target{Name: "bravo"},
	}

	enriched := NewCorrelator(background).Enrich([]Event{subject})
	e := enriched[0]

	helmetName := Armors["Item_Head_F_02_Lv2_C"]
	if e.VictimHelmet == nil || e.VictimHelmet.Item != helmetName {
		t.Errorf("victim helmet = %+v, want %q", e.VictimHelmet, helmetName)
	}
	if e.VictimVest == nil || e.VictimVest.Item != BareArmorItem {
		t.Errorf("victim vest = %+v, want bare", e.VictimVest)
	}
	vestName := Armors["Item_Armor_D_01_Lv1_C"]
	if e.Vest == nil || e.Vest.Item != vestName {
		t.Errorf("attacker vest = %+v, want %q", e.Vest, vestName)
	}
	if e.Helmet == nil || e.Helmet.Item != BareArmorItem {
		t.Errorf("attacker helmet = %+v, want bare", e.Helmet)
	}
}

func TestEnrichNoAttackSentinel(t *testing.T) {
	background := []Event{
		matchDefinition(),
		equipEvent("bravo", "2024-03-01T12:00:01.000Z", "Item_Head_E_01_Lv1_C"),
	}

	subject := Event{
		Action:   ActionPlayerTakeDamage,
		Time:     "2024-03-01T12:00:10.000Z",
		AttackID: intPtr(NoAttackID),
		Attacker: &Target{Name: "alpha"},
		Victim:   &Target{Name: "bravo", Location: Location{X: 5000}},
	}

	e := NewCorrelator(background).Enrich([]Event{subject})[0]

	// The -1 sentinel short-circuits every correlation: armor reports bare
	// even though a qualifying equip exists, and no speed is derived.
	for slot, armor := range map[string]*Armor{
		"helmet": e.Helmet, "vest": e.Vest,
		"victim helmet": e.VictimHelmet, "victim vest": e.VictimVest,
	} {
		if armor == nil || armor.Item != BareArmorItem || !armor.Condition {
			t.Errorf("%s = %+v, want intact bare armor", slot, armor)
		}
	}
	if e.BulletSpeed != nil {
		t.Errorf("bullet speed = %v, want nil", *e.BulletSpeed)
	}
	if e.Distance != nil {
		t.Errorf("distance = %v, want nil", *e.Distance)
	}
}

func TestEnrichBulletSpeed(t *testing.T) {
	tests := []struct {
		name       string
		attackTime string
		victimX    float64
		causer     string
		wantSpeed  *float64
		wantDist   *float64
	}{
		{
			// 500m in one second with an AKM (Assault Rifle, ceiling
			// 1000) is plausible.
			name:       "plausible speed kept",
			attackTime: "2024-03-01T12:00:09.000Z",
			victimX:    50000,
			causer:     "WeapAK47_C",
			wantSpeed:  floatPtr(500),
			wantDist:   floatPtr(500),
		},
		{
			// 1000m/s from a pistol (ceiling 500) is implausible; the
			// tabulated P18C speed takes over.
			name:       "implausible speed falls back to tabulated",
			attackTime: "2024-03-01T12:00:09.000Z",
			victimX:    100000,
			causer:     "WeapG18_C",
			wantSpeed:  floatPtr(375),
			wantDist:   floatPtr(1000),
		},
		{
			// Unclassified weapons have no ceiling; any speed stands.
			name:       "unclassified weapon is unbounded",
			attackTime: "2024-03-01T12:00:09.000Z",
			victimX:    500000,
			causer:     "WeapFromNextPatch_C",
			wantSpeed:  floatPtr(5000),
			wantDist:   floatPtr(5000),
		},
		{
			// Attack and damage in the same instant: no elapsed time, no
			// speed, and the distance stays unset too.
			name:       "zero elapsed time",
			attackTime: "2024-03-01T12:00:10.000Z",
			victimX:    50000,
			causer:     "WeapAK47_C",
			wantSpeed:  nil,
			wantDist:   nil,
		},
		{
			// Attacker and victim at the same point carry no signal.
			name:       "zero distance",
			attackTime: "2024-03-01T12:00:09.000Z",
			victimX:    0,
			causer:     "WeapAK47_C",
			wantSpeed:  nil,
			wantDist:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			background := []Event{
				matchDefinition(),
				attackEvent(101, tt.attackTime, "WeapAK47_C", nil),
			}
			subject := Event{
				Action:           ActionPlayerTakeDamage,
				Time:             "2024-03-01T12:00:10.000Z",
				AttackID:         intPtr(101),
				DamageCauserName: strPtr(tt.causer),
				Attacker:         &Target{Name: "alpha"},
				Victim:           &Target{Name: "bravo", Location: Location{X: tt.victimX}},
			}

			e := NewCorrelator(background).Enrich([]Event{subject})[0]

			if (e.BulletSpeed == nil) != (tt.wantSpeed == nil) {
				t.Fatalf("bullet speed = %v, want %v", e.BulletSpeed, tt.wantSpeed)
			}
			if tt.wantSpeed != nil && *e.BulletSpeed != *tt.wantSpeed {
				t.Errorf("bullet speed = %v, want %v", *e.BulletSpeed, *tt.wantSpeed)
			}
			if (e.Distance == nil) != (tt.wantDist == nil) {
				t.Fatalf("distance = %v, want %v", e.Distance, tt.wantDist)
			}
			if tt.wantDist != nil && *e.Distance != *tt.wantDist {
				t.Errorf("distance = %v, want %v", *e.Distance, *tt.wantDist)
			}
		})
	}
}

func TestEnrichFinisherDistance(t *testing.T) {
	background := []Event{
		matchDefinition(),
		attackEvent(101, "2024-03-01T12:00:09.000Z", "WeapAK47_C", nil),
	}

	subject := Event{
		Action:   ActionPlayerKill,
		Time:     "2024-03-01T12:00:10.000Z",
		AttackID: intPtr(101),
		Finisher: &Target{Name: "alpha", Location: Location{X: 30000, Y: 40000}},
		Victim:   &Target{Name: "bravo"},
	}

	e := NewCorrelator(background).Enrich([]Event{subject})[0]
	if e.Distance == nil || *e.Distance != 500 {
		t.Errorf("finisher distance = %v, want 500", e.Distance)
	}
}

func TestEnrichNameNormalization(t *testing.T) {
	subject := Event{
		Action:             ActionPlayerKill,
		Time:               "2024-03-01T12:00:10.000Z",
		AttackID:           intPtr(NoAttackID),
		Victim:             &Target{Name: "bravo"},
		DamageCauserName:   strPtr("WeapAK47_C"),
		DamageTypeCategory: strPtr("Damage_Gun"),
		DamageReason:       strPtr("HeadShot"),
		KillerDamageInfo: &DamageInfo{
			Weapon:             "WeapKar98k_C",
			DamageTypeCategory: "Damage_Gun",
			Attachments:        []string{"Item_Attach_Weapon_Upper_CQBSS_C", "not-an-id"},
		},
	}

	e := NewCorrelator([]Event{matchDefinition()}).Enrich([]Event{subject})[0]

	if *e.DamageCauserName != "AKM" {
		t.Errorf("causer = %q, want AKM", *e.DamageCauserName)
	}
	if *e.DamageTypeCategory != "Gunshot" {
		t.Errorf("damage type = %q, want Gunshot", *e.DamageTypeCategory)
	}
	if *e.DamageReason != "Headshot" {
		t.Errorf("damage reason = %q, want Headshot", *e.DamageReason)
	}
	if e.KillerDamageInfo.Weapon != "Kar98k" {
		t.Errorf("killer weapon = %q, want Kar98k", e.KillerDamageInfo.Weapon)
	}
	if e.KillerDamageInfo.DamageTypeCategory != "Gunshot" {
		t.Errorf("killer damage type = %q", e.KillerDamageInfo.DamageTypeCategory)
	}
	// Attachment lists keep unrecognized entries verbatim.
	if got := e.KillerDamageInfo.Attachments[1]; got != "not-an-id" {
		t.Errorf("unknown attachment = %q, want passthrough", got)
	}
}

func TestEnrichWeaponBackfill(t *testing.T) {
	background := []Event{
		matchDefinition(),
		{
			Action:               ActionPlayerAttack,
			Time:                 "2024-03-01T12:00:09.000Z",
			AttackID:             intPtr(101),
			FireWeaponStackCount: intPtr(3),
			Weapon: &AttackWeapon{
				Weapon:      "WeapAK47_C",
				Attachments: []string{"Item_Attach_Weapon_Lower_AngledForeGrip_C", "mystery"},
			},
		},
	}

	t.Run("attack in universe backfills", func(t *testing.T) {
		subject := Event{
			Action:   ActionPlayerTakeDamage,
			Time:     "2024-03-01T12:00:10.000Z",
			AttackID: intPtr(101),
			Attacker: &Target{Name: "alpha"},
			Victim:   &Target{Name: "bravo"},
		}
		e := NewCorrelator(background).Enrich([]Event{subject})[0]

		if e.Weapon == nil {
			t.Fatal("weapon not backfilled")
		}
		if e.Weapon.Weapon != "AKM" {
			t.Errorf("weapon = %q, want AKM", e.Weapon.Weapon)
		}
		if got := e.Weapon.Attachments[1]; got != "mystery" {
			t.Errorf("attachment passthrough = %q, want mystery", got)
		}
		if e.FireWeaponStackCount == nil || *e.FireWeaponStackCount != 3 {
			t.Errorf("stack count = %v, want 3", e.FireWeaponStackCount)
		}
	})

	t.Run("attack outside universe is untouched", func(t *testing.T) {
		subject := Event{
			Action:   ActionPlayerTakeDamage,
			Time:     "2024-03-01T12:00:10.000Z",
			AttackID: intPtr(999),
			Attacker: &Target{Name: "alpha"},
			Victim:   &Target{Name: "bravo"},
		}
		e := NewCorrelator(background).Enrich([]Event{subject})[0]
		if e.Weapon != nil {
			t.Errorf("weapon = %+v, want nil for unindexed attack", e.Weapon)
		}
	})
}

func TestEnrichTimestampNormalization(t *testing.T) {
	correlator := NewCorrelator([]Event{matchDefinition()})

	tests := []struct {
		name string
		time string
		want string
	}{
		{"whole seconds", "2024-03-01T12:00:06.000Z", "6"},
		{"fractional seconds", "2024-03-01T12:00:06.500Z", "6.5"},
		{"before match start", "2024-03-01T11:59:58.000Z", "-2"},
		{"unparseable keeps raw", "not-a-time", "not-a-time"},
		{"empty keeps empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject := Event{Action: ActionPlayerTakeDamage, Time: tt.time}
			e := correlator.Enrich([]Event{subject})[0]
			if e.Time != tt.want {
				t.Errorf("time = %q, want %q", e.Time, tt.want)
			}
		})
	}
}

func TestEnrichBadSubjectTimestamp(t *testing.T) {
	background := []Event{
		matchDefinition(),
		equipEvent("bravo", "2024-03-01T12:00:01.000Z", "Item_Head_E_01_Lv1_C"),
		attackEvent(101, "2024-03-01T12:00:09.000Z", "WeapAK47_C", nil),
	}

	subject := Event{
		Action:           ActionPlayerTakeDamage,
		Time:             "garbage",
		AttackID:         intPtr(101),
		DamageCauserName: strPtr("WeapAK47_C"),
		Attacker:         &Target{Name: "alpha"},
		Victim:           &Target{Name: "bravo", Location: Location{X: 50000}},
	}

	// A defective timestamp must not abort enrichment: derived fields are
	// skipped, everything else still runs.
	e := NewCorrelator(background).Enrich([]Event{subject})[0]

	if e.VictimHelmet == nil || e.VictimHelmet.Item != BareArmorItem {
		t.Errorf("victim helmet = %+v, want bare", e.VictimHelmet)
	}
	if e.BulletSpeed != nil {
		t.Error("bullet speed should be skipped on a bad timestamp")
	}
	if *e.DamageCauserName != "AKM" {
		t.Error("name normalization should still run")
	}
	if e.Weapon == nil || e.Weapon.Weapon != "AKM" {
		t.Error("weapon backfill should still run")
	}
	if e.Time != "garbage" {
		t.Errorf("time = %q, want the raw value kept", e.Time)
	}
}
