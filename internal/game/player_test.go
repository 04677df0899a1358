package game

import (
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"
)

func testWarrior() *Class {
	return &Class{
		Name:          "Warrior",
		Health:        200,
		Mana:          50,
		BasicDamage:   DamageRange{Min: 15, Max: 30},
		AttackMessage: "{{ .Actor }} strikes {{ .Target }} for {{ .Damage }} damage!",
		Special: Special{
			Name:    "Power Strike",
			Cost:    20,
			Damage:  DamageRange{Min: 30, Max: 50},
			Message: "{{ .Actor }} uses '{{ .Ability }}' on {{ .Target }} for {{ .Damage }} damage!",
		},
	}
}

func testMage() *Class {
	return &Class{
		Name:          "Mage",
		Health:        120,
		Mana:          150,
		BasicDamage:   DamageRange{Min: 10, Max: 20},
		AttackMessage: "{{ .Actor }} casts a fireball at {{ .Target }}, dealing {{ .Damage }} damage!",
		Special: Special{
			Name:    "Blizzard",
			Cost:    50,
			Damage:  DamageRange{Min: 40, Max: 70},
			Message: "{{ .Actor }} casts '{{ .Ability }}' on {{ .Target }}, dealing {{ .Damage }} damage!",
		},
	}
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Thor", testWarrior(), NewDice(1))

	testutil.AssertEqual(t, "name", p.Name(), "Thor")
	testutil.AssertEqual(t, "health", p.Health(), 200)
	testutil.AssertEqual(t, "mana", p.Mana(), 50)
	testutil.AssertEqual(t, "level", p.Level(), 1)
	testutil.AssertEqual(t, "experience", p.Experience(), 0)

	x, y := p.Location()
	testutil.AssertEqual(t, "x", x, 0)
	testutil.AssertEqual(t, "y", y, 0)
}

func TestAttack(t *testing.T) {
	dice := NewDice(7)
	attacker := NewPlayer("Thor", testWarrior(), dice)
	target := NewPlayer("Merlin", testMage(), dice)

	for range 20 {
		before := target.Health()
		res := attacker.Attack(target)

		if res.Damage < 15 || res.Damage > 30 {
			t.Fatalf("damage %d outside basic range [15,30]", res.Damage)
		}
		testutil.AssertEqual(t, "target health", target.Health(), before-res.Damage)
		testutil.AssertEqual(t, "result health", res.TargetHealth, target.Health())
		testutil.AssertEqual(t, "ability", res.Ability, "")
	}
}

func TestSpecialAbility(t *testing.T) {
	dice := NewDice(7)
	attacker := NewPlayer("Merlin", testMage(), dice)
	target := NewPlayer("Thor", testWarrior(), dice)

	res, err := attacker.SpecialAbility(target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "mana", attacker.Mana(), 100)
	testutil.AssertEqual(t, "ability", res.Ability, "Blizzard")
	if res.Damage < 40 || res.Damage > 70 {
		t.Fatalf("damage %d outside special range [40,70]", res.Damage)
	}
	testutil.AssertEqual(t, "target health", target.Health(), 200-res.Damage)
}

func TestSpecialAbilityInsufficientMana(t *testing.T) {
	dice := NewDice(7)
	attacker := NewPlayer("Merlin", testMage(), dice)
	target := NewPlayer("Thor", testWarrior(), dice)

	// Drain mana with two casts, leaving 50. A third succeeds, then fails.
	for range 3 {
		_, err := attacker.SpecialAbility(target)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	manaBefore := attacker.Mana()
	healthBefore := target.Health()

	_, err := attacker.SpecialAbility(target)
	if !errors.Is(err, ErrInsufficientMana) {
		t.Fatalf("expected ErrInsufficientMana, got %v", err)
	}

	testutil.AssertEqual(t, "mana unchanged", attacker.Mana(), manaBefore)
	testutil.AssertEqual(t, "target health unchanged", target.Health(), healthBefore)
	testutil.AssertEqual(t, "mana", attacker.Mana(), 0)
}

func TestTakeDamage(t *testing.T) {
	p := NewPlayer("Thor", testWarrior(), NewDice(1))

	p.TakeDamage(150)
	testutil.AssertEqual(t, "health", p.Health(), 50)
	testutil.AssertEqual(t, "defeated", p.Defeated(), false)

	p.TakeDamage(60)
	testutil.AssertEqual(t, "health", p.Health(), -10)
	testutil.AssertEqual(t, "defeated", p.Defeated(), true)
}

func TestHealHasNoCap(t *testing.T) {
	p := NewPlayer("Thor", testWarrior(), NewDice(1))

	p.Heal(500)
	testutil.AssertEqual(t, "health", p.Health(), 700)
}

func TestGainExperience(t *testing.T) {
	tests := map[string]struct {
		gains         []int
		expLevel      int
		expExperience int
		expHealth     int
		expMana       int
	}{
		"below threshold": {
			gains:         []int{50},
			expLevel:      1,
			expExperience: 50,
			expHealth:     200,
			expMana:       50,
		},
		"exact threshold levels up": {
			gains:         []int{100},
			expLevel:      2,
			expExperience: 0,
			expHealth:     250,
			expMana:       70,
		},
		"threshold resets experience": {
			gains:         []int{150},
			expLevel:      2,
			expExperience: 0,
			expHealth:     250,
			expMana:       70,
		},
		"accumulates across gains": {
			gains:         []int{60, 60},
			expLevel:      2,
			expExperience: 0,
			expHealth:     250,
			expMana:       70,
		},
		"second level needs double": {
			gains:         []int{100, 150, 100},
			expLevel:      3,
			expExperience: 0,
			expHealth:     300,
			expMana:       90,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPlayer("Thor", testWarrior(), NewDice(1))

			var last ExperienceGain
			for _, g := range tt.gains {
				last = p.GainExperience(g)
			}

			testutil.AssertEqual(t, "level", p.Level(), tt.expLevel)
			testutil.AssertEqual(t, "experience", p.Experience(), tt.expExperience)
			testutil.AssertEqual(t, "health", p.Health(), tt.expHealth)
			testutil.AssertEqual(t, "mana", p.Mana(), tt.expMana)
			testutil.AssertEqual(t, "gain level", last.Level, tt.expLevel)
			testutil.AssertEqual(t, "gain experience", last.Experience, tt.expExperience)
		})
	}
}

func TestUseItem(t *testing.T) {
	p := NewPlayer("Thor", testWarrior(), NewDice(1))
	potion := &Item{Name: "Health Potion", Effect: "Heals 20 HP", Heal: 20}

	p.TakeDamage(100)
	p.AddItem(potion)
	testutil.AssertEqual(t, "count", p.ItemCount("Health Potion"), 1)

	item, err := p.UseItem("Health Potion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "item name", item.Name, "Health Potion")
	testutil.AssertEqual(t, "health", p.Health(), 120)
	testutil.AssertEqual(t, "count", p.ItemCount("Health Potion"), 0)

	_, err = p.UseItem("Health Potion")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRegenerate(t *testing.T) {
	tests := map[string]struct {
		setup     func(p *Player)
		expHealth int
		expMana   int
	}{
		"wounded recovers": {
			setup:     func(p *Player) { p.TakeDamage(50) },
			expHealth: 151,
			expMana:   50,
		},
		"recovery stops at ceiling": {
			setup:     func(p *Player) { p.TakeDamage(1) },
			expHealth: 200,
			expMana:   50,
		},
		"overhealed health untouched": {
			setup:     func(p *Player) { p.Heal(100) },
			expHealth: 300,
			expMana:   50,
		},
		"defeated does not recover": {
			setup:     func(p *Player) { p.TakeDamage(300) },
			expHealth: -100,
			expMana:   50,
		},
		"in combat does not recover": {
			setup: func(p *Player) {
				p.TakeDamage(50)
				p.EnterCombat()
			},
			expHealth: 150,
			expMana:   50,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPlayer("Thor", testWarrior(), NewDice(1))
			tt.setup(p)

			p.Regenerate(1, 5)

			testutil.AssertEqual(t, "health", p.Health(), tt.expHealth)
			testutil.AssertEqual(t, "mana", p.Mana(), tt.expMana)
		})
	}
}

// Overlapping duels each hold regeneration; it resumes only after the last
// one exits.
func TestRegenerateOverlappingCombat(t *testing.T) {
	p := NewPlayer("Thor", testWarrior(), NewDice(1))
	p.TakeDamage(50)

	p.EnterCombat()
	p.EnterCombat()

	p.ExitCombat()
	p.Regenerate(1, 5)
	testutil.AssertEqual(t, "still fighting", p.Health(), 150)

	p.ExitCombat()
	p.Regenerate(1, 5)
	testutil.AssertEqual(t, "recovering", p.Health(), 151)
}

func TestStatsSnapshot(t *testing.T) {
	p := NewPlayer("Shadow", &Class{
		Name:          "Rogue",
		Health:        150,
		Mana:          70,
		BasicDamage:   DamageRange{Min: 20, Max: 25},
		AttackMessage: "x",
		Special:       Special{Name: "Backstab", Cost: 30, Damage: DamageRange{Min: 35, Max: 60}, Message: "y"},
	}, NewDice(1))

	p.Move(3, 4)
	p.AddItem(&Item{Name: "Health Potion", Effect: "Heals 20 HP", Heal: 20})

	st := p.Stats()
	testutil.AssertEqual(t, "name", st.Name, "Shadow")
	testutil.AssertEqual(t, "class", st.Class, "Rogue")
	testutil.AssertEqual(t, "x", st.X, 3)
	testutil.AssertEqual(t, "y", st.Y, 4)
	testutil.AssertEqual(t, "items", st.Items, 1)
}
