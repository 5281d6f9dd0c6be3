package telemetry

// Static vocabulary tables mapping telemetry item ids to display names.
// Sources: the PUBG telemetry item dictionaries published with the API docs.

// Weapons maps weapon and damage-causer ids to weapon names.
var Weapons = Table{
	"WeapAK47_C":          "AKM",
	"WeapHK416_C":         "M416",
	"WeapSCAR-L_C":        "SCAR-L",
	"WeapM16A4_C":         "M16A4",
	"WeapG36C_C":          "G36C",
	"WeapGroza_C":         "Groza",
	"WeapAUG_C":           "AUG A3",
	"WeapQBZ95_C":         "QBZ95",
	"WeapBerylM762_C":     "Beryl M762",
	"WeapMk47Mutant_C":    "Mk47 Mutant",
	"WeapACE32_C":         "ACE32",
	"WeapK2_C":            "K2",
	"WeapDP28_C":          "DP-28",
	"WeapM249_C":          "M249",
	"WeapMG3_C":           "MG3",
	"WeapUMP_C":           "UMP45",
	"WeapVector_C":        "Vector",
	"WeapUZI_C":           "Micro UZI",
	"WeapMP5K_C":          "MP5K",
	"WeapMP9_C":           "MP9",
	"WeapThompson_C":      "Tommy Gun",
	"WeapBizonPP19_C":     "PP-19 Bizon",
	"WeapP90_C":           "P90",
	"WeapKar98k_C":        "Kar98k",
	"WeapM24_C":           "M24",
	"WeapAWM_C":           "AWM",
	"WeapMosinNagant_C":   "Mosin Nagant",
	"WeapWinchester_C":    "Win94",
	"WeapLynxAMR_C":       "Lynx AMR",
	"WeapSKS_C":           "SKS",
	"WeapSLR_C":           "SLR",
	"WeapMini14_C":        "Mini 14",
	"WeapMk14_C":          "Mk14 EBR",
	"WeapQBU88_C":         "QBU88",
	"WeapVSS_C":           "VSS",
	"WeapMk12_C":          "Mk12",
	"WeapDragunov_C":      "Dragunov",
	"WeapSaiga12_C":       "S12K",
	"WeapBerreta686_C":    "S686",
	"WeapWinchesterModel1897_C": "S1897",
	"WeapDP12_C":          "DBS",
	"WeapSawnoff_C":       "Sawed-off",
	"WeapDesertEagle_C":   "Deagle",
	"WeapG18_C":           "P18C",
	"WeapM1911_C":         "P1911",
	"WeapM9_C":            "P92",
	"WeapNagantM1895_C":   "R1895",
	"WeapRhino_C":         "R45",
	"WeapvzSkorpion_C":    "Skorpion",
	"WeapCrossbow_1_C":    "Crossbow",
	"WeapPan_C":           "Pan",
	"WeapMachete_C":       "Machete",
	"WeapCowbar_C":        "Crowbar",
	"WeapSickle_C":        "Sickle",
	"ProjGrenade_C":       "Frag Grenade",
	"ProjMolotov_C":       "Molotov Cocktail",
	"ProjStickyGrenade_C": "Sticky Bomb",
	"ProjC4_C":            "C4",
	"PanzerFaust100M_Projectile_C": "Panzerfaust",
}

// DamageTypes maps damage category codes to display names.
var DamageTypes = Table{
	"Damage_Gun":                   "Gunshot",
	"Damage_Melee":                 "Melee",
	"Damage_MeleeThrow":            "Thrown melee weapon",
	"Damage_Punch":                 "Punch",
	"Damage_Explosion_Grenade":     "Grenade",
	"Damage_Explosion_StickyBomb":  "Sticky Bomb",
	"Damage_Explosion_C4":          "C4",
	"Damage_Explosion_RedZone":     "Red Zone",
	"Damage_Explosion_Vehicle":     "Vehicle explosion",
	"Damage_Explosion_PanzerFaustWarhead": "Panzerfaust",
	"Damage_Molotov":               "Molotov",
	"Damage_Groggy":                "Bleed out",
	"Damage_Drown":                 "Drowning",
	"Damage_BlueZone":              "Blue Zone",
	"Damage_BlackZone":             "Black Zone",
	"Damage_Instant_Fall":          "Fall",
	"Damage_VehicleHit":            "Vehicle hit",
	"Damage_VehicleCrashHit":       "Vehicle crash",
	"Damage_Burn":                  "Burn",
	"Damage_SandStorm":             "Sandstorm",
	"Damage_None":                  "None",
}

// Attachments maps attachment ids to display names.
var Attachments = Table{
	"Item_Attach_Weapon_Upper_DotSight_01_C":          "Red Dot Sight",
	"Item_Attach_Weapon_Upper_Holosight_01_C":         "Holographic Sight",
	"Item_Attach_Weapon_Upper_Aimpoint_C":             "2x Aimpoint Scope",
	"Item_Attach_Weapon_Upper_Scope3x_C":              "3x Backlit Scope",
	"Item_Attach_Weapon_Upper_ACOG_01_C":              "4x ACOG Scope",
	"Item_Attach_Weapon_Upper_Scope6x_C":              "6x Scope",
	"Item_Attach_Weapon_Upper_CQBSS_C":                "8x CQBSS Scope",
	"Item_Attach_Weapon_Upper_PM2_01_C":               "Canted Sight",
	"Item_Attach_Weapon_Muzzle_Suppressor_Large_C":    "Suppressor (AR, DMR, S12K)",
	"Item_Attach_Weapon_Muzzle_Suppressor_Medium_C":   "Suppressor (SMG, Pistol)",
	"Item_Attach_Weapon_Muzzle_Suppressor_SniperRifle_C": "Suppressor (SR)",
	"Item_Attach_Weapon_Muzzle_FlashHider_Large_C":    "Flash Hider (AR, DMR, S12K)",
	"Item_Attach_Weapon_Muzzle_FlashHider_Medium_C":   "Flash Hider (SMG)",
	"Item_Attach_Weapon_Muzzle_FlashHider_SniperRifle_C": "Flash Hider (SR)",
	"Item_Attach_Weapon_Muzzle_Compensator_Large_C":   "Compensator (AR, DMR, S12K)",
	"Item_Attach_Weapon_Muzzle_Compensator_Medium_C":  "Compensator (SMG)",
	"Item_Attach_Weapon_Muzzle_Compensator_SniperRifle_C": "Compensator (SR)",
	"Item_Attach_Weapon_Muzzle_Choke_C":               "Choke",
	"Item_Attach_Weapon_Muzzle_Duckbill_C":            "Duckbill",
	"Item_Attach_Weapon_Lower_Foregrip_C":             "Vertical Foregrip",
	"Item_Attach_Weapon_Lower_AngledForeGrip_C":       "Angled Foregrip",
	"Item_Attach_Weapon_Lower_HalfGrip_C":             "Half Grip",
	"Item_Attach_Weapon_Lower_LightweightForeGrip_C":  "Lightweight Grip",
	"Item_Attach_Weapon_Lower_ThumbGrip_C":            "Thumb Grip",
	"Item_Attach_Weapon_Lower_LaserPointer_C":         "Laser Sight",
	"Item_Attach_Weapon_Magazine_Extended_Large_C":    "Extended Mag (AR, DMR, S12K)",
	"Item_Attach_Weapon_Magazine_Extended_Medium_C":   "Extended Mag (SMG, Pistol)",
	"Item_Attach_Weapon_Magazine_Extended_SniperRifle_C": "Extended Mag (SR)",
	"Item_Attach_Weapon_Magazine_QuickDraw_Large_C":   "Quickdraw Mag (AR, DMR, S12K)",
	"Item_Attach_Weapon_Magazine_QuickDraw_Medium_C":  "Quickdraw Mag (SMG, Pistol)",
	"Item_Attach_Weapon_Magazine_QuickDraw_SniperRifle_C": "Quickdraw Mag (SR)",
	"Item_Attach_Weapon_Magazine_ExtendedQuickDraw_Large_C":  "Ext. Quickdraw Mag (AR, DMR, S12K)",
	"Item_Attach_Weapon_Magazine_ExtendedQuickDraw_Medium_C": "Ext. Quickdraw Mag (SMG, Pistol)",
	"Item_Attach_Weapon_Magazine_ExtendedQuickDraw_SniperRifle_C": "Ext. Quickdraw Mag (SR)",
	"Item_Attach_Weapon_Stock_AR_Composite_C":         "Tactical Stock",
	"Item_Attach_Weapon_Stock_Shotgun_BulletLoops_C":  "Bullet Loops",
	"Item_Attach_Weapon_Stock_SniperRifle_CheekPad_C": "Cheek Pad",
	"Item_Attach_Weapon_Stock_UZI_C":                  "Folding Stock (Micro UZI)",
}

// Armors maps helmet and vest item ids to display names. The correlation
// engine classifies armor slots by the "Helmet"/"Vest" substring of these
// names, so every entry must carry one of the two.
var Armors = Table{
	"Item_Head_E_01_Lv1_C": "Motorcycle Helmet (Lv.1)",
	"Item_Head_E_02_Lv1_C": "Motorcycle Helmet (Lv.1)",
	"Item_Head_F_01_Lv2_C": "Military Helmet (Lv.2)",
	"Item_Head_F_02_Lv2_C": "Military Helmet (Lv.2)",
	"Item_Head_G_01_Lv3_C": "Spetsnaz Helmet (Lv.3)",
	"Item_Armor_D_01_Lv1_C": "Police Vest (Lv.1)",
	"Item_Armor_E_01_Lv2_C": "Police Vest (Lv.2)",
	"Item_Armor_C_01_Lv3_C": "Military Vest (Lv.3)",
}

// MapNames maps internal map codes to marketing names.
var MapNames = Table{
	"Baltic_Main":     "Erangel",
	"Erangel_Main":    "Erangel",
	"Desert_Main":     "Miramar",
	"Savage_Main":     "Sanhok",
	"DihorOtok_Main":  "Vikendi",
	"Summerland_Main": "Karakin",
	"Chimera_Main":    "Paramo",
	"Heaven_Main":     "Haven",
	"Tiger_Main":      "Taego",
	"Kiki_Main":       "Deston",
	"Neon_Main":       "Rondo",
	"Range_Main":      "Camp Jackal",
}

// HitLocations maps damage reason codes to hit locations.
var HitLocations = Table{
	"HeadShot":    "Headshot",
	"TorsoShot":   "Torso",
	"PelvisShot":  "Pelvis",
	"ArmShot":     "Arm",
	"LegShot":     "Leg",
	"NonSpecific": "Nonspecific",
	"None":        "None",
}

// WeaponClasses maps translated weapon names to the class used for bullet
// speed plausibility checks.
var WeaponClasses = Table{
	"AKM":          "Assault Rifle",
	"M416":         "Assault Rifle",
	"SCAR-L":       "Assault Rifle",
	"M16A4":        "Assault Rifle",
	"G36C":         "Assault Rifle",
	"Groza":        "Assault Rifle",
	"AUG A3":       "Assault Rifle",
	"QBZ95":        "Assault Rifle",
	"Beryl M762":   "Assault Rifle",
	"Mk47 Mutant":  "Assault Rifle",
	"ACE32":        "Assault Rifle",
	"K2":           "Assault Rifle",
	"DP-28":        "LMG",
	"M249":         "LMG",
	"MG3":          "LMG",
	"UMP45":        "SMG",
	"Vector":       "SMG",
	"Micro UZI":    "SMG",
	"MP5K":         "SMG",
	"MP9":          "SMG",
	"Tommy Gun":    "SMG",
	"PP-19 Bizon":  "SMG",
	"P90":          "SMG",
	"Skorpion":     "SMG",
	"SKS":          "DMR",
	"SLR":          "DMR",
	"Mini 14":      "DMR",
	"Mk14 EBR":     "DMR",
	"QBU88":        "DMR",
	"VSS":          "DMR",
	"Mk12":         "DMR",
	"Dragunov":     "DMR",
	"Kar98k":       "HP Sniper",
	"M24":          "HP Sniper",
	"AWM":          "HP Sniper",
	"Mosin Nagant": "HP Sniper",
	"Win94":        "HP Sniper",
	"Lynx AMR":     "HP Sniper",
	"S12K":         "Shotgun",
	"S686":         "Shotgun",
	"S1897":        "Shotgun",
	"DBS":          "Shotgun",
	"Sawed-off":    "Shotgun",
	"Deagle":       "Pistol",
	"P18C":         "Pistol",
	"P1911":        "Pistol",
	"P92":          "Pistol",
	"R1895":        "Pistol",
	"R45":          "Pistol",
}

// defaultBulletSpeeds holds tabulated muzzle velocities (m/s) per translated
// weapon name, used when a computed speed fails the class plausibility check.
var defaultBulletSpeeds = map[string]float64{
	"AKM":          715,
	"M416":         880,
	"SCAR-L":       870,
	"M16A4":        900,
	"G36C":         870,
	"Groza":        715,
	"AUG A3":       940,
	"QBZ95":        870,
	"Beryl M762":   740,
	"Mk47 Mutant":  790,
	"ACE32":        750,
	"K2":           880,
	"DP-28":        715,
	"M249":         915,
	"MG3":          820,
	"UMP45":        360,
	"Vector":       300,
	"Micro UZI":    350,
	"MP5K":         400,
	"MP9":          380,
	"Tommy Gun":    280,
	"PP-19 Bizon":  460,
	"P90":          395,
	"Skorpion":     350,
	"SKS":          800,
	"SLR":          840,
	"Mini 14":      990,
	"Mk14 EBR":     853,
	"QBU88":        945,
	"VSS":          330,
	"Mk12":         900,
	"Dragunov":     830,
	"Kar98k":       760,
	"M24":          790,
	"AWM":          945,
	"Mosin Nagant": 760,
	"Win94":        760,
	"Lynx AMR":     950,
	"S12K":         350,
	"S686":         370,
	"S1897":        360,
	"DBS":          390,
	"Sawed-off":    330,
	"Deagle":       450,
	"P18C":         375,
	"P1911":        250,
	"P92":          380,
	"R1895":        330,
	"R45":          330,
}
