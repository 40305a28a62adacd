package categorizer

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/categorizer/testutil"
)

// checkBijection asserts that the value->categories and category->values
// views describe the same relation.
func checkBijection(t *testing.T, ix Categorizer[string, string]) {
	t.Helper()

	for _, v := range ix.Values() {
		cats, err := ix.Categories(v)
		require.NoError(t, err)
		for _, c := range cats {
			members, err := ix.LookupOr(c)
			require.NoError(t, err)
			assert.Equal(t, 1, count(members, v), "value %q listed under %q", v, c)
		}
	}

	for _, c := range ix.AllCategories() {
		members, err := ix.LookupOr(c)
		require.NoError(t, err)
		for _, v := range members {
			cats, err := ix.Categories(v)
			require.NoError(t, err, "listed value %q is not present", v)
			assert.Contains(t, cats, c)
		}
	}
}

func count[T comparable](xs []T, x T) int {
	n := 0
	for _, y := range xs {
		if y == x {
			n++
		}
	}
	return n
}

func TestIndex_RandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 42, 4711} {
		rng := testutil.NewRNG(seed)
		values := testutil.Strings("v", 20)
		categories := testutil.Strings("c", 8)

		ix := New[string, string]()
		model := make(map[string][]string)
		known := make(map[string]bool)

		for range 500 {
			v := testutil.Pick(rng, values)
			cats := testutil.Subset(rng, categories, 4)

			switch rng.Intn(4) {
			case 0:
				ix.Add(v, cats...)
				model[v] = cats
			case 1:
				ix.Replace(v, cats...)
				model[v] = cats
			case 2:
				if ix.AddIfAbsent(v, cats...) {
					_, had := model[v]
					require.False(t, had)
					model[v] = cats
				} else {
					continue
				}
			case 3:
				err := ix.Remove(v)
				if _, had := model[v]; had {
					require.NoError(t, err)
					delete(model, v)
				} else {
					require.ErrorIs(t, err, ErrValueNotFound)
				}
				continue
			}
			for _, c := range cats {
				known[c] = true
			}
		}

		checkBijection(t, ix)

		assert.Equal(t, len(model), ix.Len())
		for v, want := range model {
			got, err := ix.Categories(v)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
		for c := range known {
			assert.True(t, ix.ContainsCategory(c))
		}
		assert.Len(t, ix.AllCategories(), len(known))
	}
}

func TestIndex_AndIsSubsetOfOr(t *testing.T) {
	rng := testutil.NewRNG(7)
	values := testutil.Strings("v", 50)
	categories := testutil.Strings("c", 6)

	ix := New[string, string]()
	for _, v := range values {
		ix.Add(v, testutil.Subset(rng, categories, 4)...)
	}

	for range 100 {
		q := testutil.Subset(rng, ix.AllCategories(), 3)
		if len(q) == 0 {
			continue
		}

		and, err := ix.LookupAnd(q...)
		require.NoError(t, err)
		or, err := ix.LookupOr(q...)
		require.NoError(t, err)

		for _, v := range and {
			assert.Contains(t, or, v)

			cats, _ := ix.Categories(v)
			for _, c := range q {
				assert.True(t, slices.Contains(cats, c))
			}
		}

		// Every value whose set covers q must be returned.
		for _, v := range ix.Values() {
			cats, _ := ix.Categories(v)
			covers := true
			for _, c := range q {
				covers = covers && slices.Contains(cats, c)
			}
			assert.Equal(t, covers, slices.Contains(and, v))
		}
	}
}

func TestIndex_RemoveThenQuery(t *testing.T) {
	rng := testutil.NewRNG(99)
	values := testutil.Strings("v", 30)
	categories := testutil.Strings("c", 5)

	ix := New[string, string]()
	for _, v := range values {
		ix.Add(v, testutil.Subset(rng, categories, 3)...)
	}

	for _, i := range rng.Perm(len(values))[:15] {
		v := values[i]
		require.NoError(t, ix.Remove(v))
		assert.False(t, ix.ContainsValue(v))

		for _, c := range ix.AllCategories() {
			members, err := ix.LookupOr(c)
			require.NoError(t, err)
			assert.NotContains(t, members, v)
		}
	}

	checkBijection(t, ix)
}

func TestAutoCategorizer_RandomOperations(t *testing.T) {
	for _, seed := range []int64{3, 42, 2024} {
		rng := testutil.NewRNG(seed)
		values := testutil.Strings("v", 20)
		categories := testutil.Strings("c", 8)

		ac := NewAuto[string, string]()
		ac.AddCaseFunc(func(v string) bool { return len(v) == 2 }, "short")
		// Overlaps the explicit vocabulary so matched and explicit collide.
		ac.AddCaseFunc(func(v string) bool { return strings.HasSuffix(v, "1") }, "c1")

		expected := func(v string, explicit []string) []string {
			var want []string
			if len(v) == 2 {
				want = append(want, "short")
			}
			if strings.HasSuffix(v, "1") {
				want = append(want, "c1")
			}
			for _, c := range explicit {
				if !slices.Contains(want, c) {
					want = append(want, c)
				}
			}
			return want
		}

		model := make(map[string][]string)

		for range 500 {
			v := testutil.Pick(rng, values)
			cats := testutil.Subset(rng, categories, 4)

			switch rng.Intn(4) {
			case 0:
				ac.Add(v, cats...)
				model[v] = expected(v, cats)
			case 1:
				ac.Replace(v, cats...)
				model[v] = expected(v, cats)
			case 2:
				_, had := model[v]
				assert.Equal(t, !had, ac.AddIfAbsent(v, cats...))
				if !had {
					model[v] = expected(v, cats)
				}
			case 3:
				err := ac.Remove(v)
				if _, had := model[v]; had {
					require.NoError(t, err)
					delete(model, v)
				} else {
					require.ErrorIs(t, err, ErrValueNotFound)
				}
			}
		}

		checkBijection(t, ac)

		assert.Equal(t, len(model), ac.Len())
		for v, want := range model {
			got, err := ac.Categories(v)
			require.NoError(t, err)
			if len(want) == 0 {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, want, got, "value %q", v)
			}
		}
	}
}
