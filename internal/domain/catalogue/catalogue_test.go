package catalogue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_HasTwentyFiveQueries(t *testing.T) {
	t.Parallel()

	c := New()
	require.Equal(t, 25, c.Len())
	require.Len(t, c.Names(), 25)
}

func TestNames_PreservesDefinitionOrder(t *testing.T) {
	t.Parallel()

	names := New().Names()
	require.Equal(t, "Q1. Players from India", names[0])
	require.Equal(t, "Q25. Venues Hosting >10 Matches", names[len(names)-1])

	// Definition order is the dashboard's selector order; a stable Q-prefix
	// sequence is part of the contract.
	for i, name := range names {
		require.Truef(t, strings.HasPrefix(name, "Q"), "name %d = %q", i, name)
	}
}

func TestGet_KnownNamesReturnSQL(t *testing.T) {
	t.Parallel()

	c := New()
	for _, name := range c.Names() {
		def, err := c.Get(name)
		require.NoError(t, err)
		require.NotEmpty(t, strings.TrimSpace(def.SQL))
		require.Contains(t, def.SQL, "cricket_data")
	}
}

func TestGet_UnknownNameFails(t *testing.T) {
	t.Parallel()

	_, err := New().Get("Q99. Does Not Exist")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestNewCatalogue_DuplicateNamePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate query name")
		}
	}()
	newCatalogue([]QueryDefinition{
		{Name: "Q1. Dup", SQL: "SELECT 1;"},
		{Name: "Q1. Dup", SQL: "SELECT 2;"},
	})
}
