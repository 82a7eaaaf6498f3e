package ability

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
	"github.com/osse101/CustomItemEffects_Go/internal/item"
)

type builder struct {
	params []string
	build  func(p params) item.Ability
}

var builders = map[string]builder{
	domain.AbilityStrike: {
		params: []string{ParamDamage},
		build: func(p params) item.Ability {
			return Strike{Damage: p.get(ParamDamage, DefaultStrikeDamage)}
		},
	},
	domain.AbilityHeal: {
		params: []string{ParamAmount},
		build: func(p params) item.Ability {
			return Heal{Amount: p.get(ParamAmount, DefaultHealAmount)}
		},
	},
	domain.AbilityIgnite: {
		params: []string{ParamSeconds},
		build: func(p params) item.Ability {
			return Ignite{Seconds: p.get(ParamSeconds, DefaultIgniteSeconds)}
		},
	},
	domain.AbilitySmite: {
		params: []string{ParamDamage, ParamSeconds},
		build: func(p params) item.Ability {
			return Smite{
				Damage:  p.get(ParamDamage, DefaultSmiteDamage),
				Seconds: p.get(ParamSeconds, DefaultSmiteSeconds),
			}
		},
	},
}

type params map[string]float64

func (p params) get(name string, def float64) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return def
}

// Build resolves an ability by name. It satisfies item.AbilityFactory.
func Build(name string, p map[string]float64) (item.Ability, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf(ErrFmtUnknownAbility, domain.ErrUnknownAbility, name, strings.Join(Names(), ", "))
	}

	for key, value := range p {
		if !contains(b.params, key) {
			return nil, fmt.Errorf(ErrFmtUnknownParam, domain.ErrInvalidAbilityArgs, name, key)
		}
		if value < 0 {
			return nil, fmt.Errorf(ErrFmtNegativeParam, domain.ErrInvalidAbilityArgs, name, key)
		}
	}

	return b.build(params(p)), nil
}

// Names lists every ability Build knows, sorted
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ item.AbilityFactory = Build

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
