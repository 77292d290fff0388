package enum_test

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/on-the-ground/funcore/enum"
	"github.com/samber/lo"
)

func properties() *gopter.Properties {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	return gopter.NewProperties(params)
}

func TestProperties_Dedup(t *testing.T) {
	props := properties()
	small := gen.SliceOf(gen.IntRange(0, 6))

	props.Property("dedup is idempotent", prop.ForAll(
		func(xs []int) bool {
			once := enum.Dedup(xs)
			return slices.Equal(enum.Dedup(once), once)
		},
		small,
	))

	props.Property("dedup keeps first occurrences in order", prop.ForAll(
		func(xs []int) bool {
			seen := map[int]bool{}
			want := []int{}
			for _, x := range xs {
				if !seen[x] {
					seen[x] = true
					want = append(want, x)
				}
			}
			return slices.Equal(enum.Dedup(xs), want)
		},
		small,
	))

	props.TestingRun(t)
}

func TestProperties_ZipRoundTrip(t *testing.T) {
	props := properties()

	props.Property("unzip(zip(a, b)) == (a, b)", prop.ForAll(
		func(a []int) bool {
			b := lo.Map(a, func(x int, i int) string { return string(rune('a' + (x+i)%26)) })
			gotA, gotB := enum.Unzip(enum.Zip(a, b))
			return slices.Equal(gotA, a) && slices.Equal(gotB, b)
		},
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	props.TestingRun(t)
}

func TestProperties_Rotate(t *testing.T) {
	props := properties()

	props.Property("rotating by k then -k is the identity", prop.ForAll(
		func(xs []int, k int) bool {
			if len(xs) == 0 {
				return true
			}
			there, err := enum.Rotate(xs, k)
			if err != nil {
				return false
			}
			back, err := enum.Rotate(there, -k)
			return err == nil && slices.Equal(back, xs)
		},
		gen.SliceOf(gen.Int()),
		gen.IntRange(-20, 20),
	))

	props.TestingRun(t)
}
