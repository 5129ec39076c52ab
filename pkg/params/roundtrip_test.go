package params

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Round-trip law: for every kind, Parse(Format(v)) == v for all values v
// satisfying that kind's constraints.
func TestParseFormatRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	cropChoices := []string{"AmaranthRed", "Lettuce", "XiaoBaiCai", "Tomato"}

	boolean := testParameter(KindBoolean, nil)
	integer := testParameter(KindInteger, nil)
	real := testParameter(KindReal, nil)
	str := testParameter(KindString, nil)
	choice := testParameter(KindChoice, cropChoices)
	multi := testParameter(KindMultiChoice, cropChoices)
	buildings := testParameter(KindBuildings, nil)

	genIdentifier := gen.RegexMatch(`B[0-9]{4}`)
	genCrop := gen.OneConstOf("AmaranthRed", "Lettuce", "XiaoBaiCai", "Tomato")

	properties.Property("boolean round-trip", prop.ForAll(
		func(v bool) bool { return roundTrips(boolean, v) },
		gen.Bool(),
	))

	properties.Property("integer round-trip", prop.ForAll(
		func(v int) bool { return roundTrips(integer, v) },
		gen.IntRange(-1_000_000, 1_000_000),
	))

	properties.Property("real round-trip", prop.ForAll(
		func(v float64) bool { return roundTrips(real, v) },
		gen.Float64Range(-1e9, 1e9),
	))

	// Leading and trailing whitespace is trimmed by the text format, so the
	// law is quantified over trimmed strings without line breaks.
	properties.Property("string round-trip", prop.ForAll(
		func(v string) bool { return roundTrips(str, v) },
		gen.AlphaString(),
	))

	properties.Property("choice round-trip", prop.ForAll(
		func(v string) bool { return roundTrips(choice, v) },
		genCrop,
	))

	properties.Property("multi-choice round-trip", prop.ForAll(
		func(v []string) bool { return roundTrips(multi, v) },
		gen.SliceOf(genCrop),
	))

	properties.Property("buildings round-trip", prop.ForAll(
		func(v []string) bool { return roundTrips(buildings, v) },
		gen.SliceOf(genIdentifier),
	))

	properties.TestingRun(t)
}

// Serialization round-trip law: Load(Serialize(S)) is value-equivalent to S
// for any well-formed schema.
func TestSerializeRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	genName := gen.RegexMatch(`[a-z][a-z0-9-]{0,15}[a-z0-9]`)

	genSchemaText := gopter.CombineGens(
		gen.SliceOfN(4, genName),
		gen.SliceOfN(4, gen.Bool()),
		gen.SliceOfN(4, gen.Float64Range(-1e6, 1e6)),
	).Map(func(vals []interface{}) string {
		names := vals[0].([]string)
		bools := vals[1].([]bool)
		reals := vals[2].([]float64)

		seen := make(map[string]bool)
		text := "[generated]\n"
		for i, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			p := testParameter(KindBoolean, nil)
			raw, _ := p.Format(bools[i])
			if i%2 == 0 {
				p = testParameter(KindReal, nil)
				raw, _ = p.Format(reals[i])
				text += name + " = " + raw + "\n" + name + ".type = RealParameter\n"
			} else {
				text += name + " = " + raw + "\n" + name + ".type = BooleanParameter\n"
			}
		}
		return text
	})

	properties.Property("load-serialize-load is value-equivalent", prop.ForAll(
		func(text string) bool {
			first, err := Load(text)
			if err != nil {
				return false
			}
			serialized, err := first.Serialize()
			if err != nil {
				return false
			}
			second, err := Load(serialized)
			if err != nil {
				return false
			}
			return schemasEqual(first, second)
		},
		genSchemaText,
	))

	properties.TestingRun(t)
}

func testParameter(kind Kind, choices []string) *Parameter {
	return &Parameter{section: "test", name: "p", kind: kind, choices: choices}
}

func roundTrips(p *Parameter, v interface{}) bool {
	// Parse never yields a nil slice, so normalize generated empty slices.
	if list, ok := v.([]string); ok && list == nil {
		v = []string{}
	}
	text, err := p.Format(v)
	if err != nil {
		return false
	}
	back, err := p.Parse(text)
	if err != nil {
		return false
	}
	return reflect.DeepEqual(back, v)
}

func schemasEqual(a, b *Schema) bool {
	as, bs := a.Sections(), b.Sections()
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		ap, bp := as[i].All(), bs[i].All()
		if as[i].Name() != bs[i].Name() || len(ap) != len(bp) {
			return false
		}
		for j := range ap {
			if ap[j].Name() != bp[j].Name() || ap[j].Kind() != bp[j].Kind() {
				return false
			}
			if !reflect.DeepEqual(ap[j].Value(), bp[j].Value()) {
				return false
			}
		}
	}
	return true
}
