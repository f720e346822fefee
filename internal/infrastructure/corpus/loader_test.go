package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundscout/backend/internal/domain"
)

const validHeader = "name,brand,price,rating,reviews,category,image_url,description,availability,loyaltypoints\n"

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoaderLoadCSV(t *testing.T) {
	t.Run("parses a well-formed file", func(t *testing.T) {
		path := writeCorpusFile(t, validHeader+
			"Sony WH-CH520 (Black),Sony,3989,4.2,17809,Headphone,https://example.com/a.jpg,Wireless headphones,53,398\n"+
			"boAt Bassheads 100,Boat,297,4.1,415342,Headphone,https://example.com/b.jpg,Wired earphones,58,29\n")

		products, source, err := NewLoader(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.CorpusSourceCSV, source)
		require.Len(t, products, 2)

		assert.Equal(t, "Sony WH-CH520 (Black)", products[0].Name)
		assert.Equal(t, "Sony", products[0].Brand)
		assert.Equal(t, 3989.0, products[0].Price)
		assert.Equal(t, 4.2, products[0].Rating)
		assert.Equal(t, 17809, products[0].Reviews)
		assert.Equal(t, 53.0, products[0].Availability)
		assert.Equal(t, 398.0, products[0].LoyaltyPoints)
	})

	t.Run("trims header and field whitespace", func(t *testing.T) {
		path := writeCorpusFile(t, " name , brand , price , rating , reviews , category , image_url , description , availability , loyaltypoints \n"+
			" JBL Tune 510BT , JBL , 3499 , 4.2 , 12000 , Headphone , https://example.com/c.jpg , On-ear headset , 60 , 349 \n")

		products, source, err := NewLoader(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.CorpusSourceCSV, source)
		require.Len(t, products, 1)
		assert.Equal(t, "JBL Tune 510BT", products[0].Name)
		assert.Equal(t, 3499.0, products[0].Price)
	})

	t.Run("leaves derived fields for the pipeline", func(t *testing.T) {
		path := writeCorpusFile(t, validHeader+
			"Sony WH-CH520,Sony,3989,4.2,17809,Headphone,url,Wireless headphones,53,398\n")

		products, _, err := NewLoader(path).Load(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Empty(t, products[0].FormFactor)
		assert.Empty(t, products[0].Connectivity)
		assert.Empty(t, products[0].BaseModel)
	})
}

func TestLoaderSampleFallback(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "does-not-exist.csv")

		products, source, err := NewLoader(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.CorpusSourceSample, source)
		assert.Len(t, products, 7)
	})

	t.Run("missing required column", func(t *testing.T) {
		path := writeCorpusFile(t, "name,brand,price\nSony,Sony,100\n")

		products, source, err := NewLoader(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.CorpusSourceSample, source)
		assert.Len(t, products, 7)
	})

	t.Run("unparseable numeric field", func(t *testing.T) {
		path := writeCorpusFile(t, validHeader+
			"Sony WH-CH520,Sony,cheap,4.2,17809,Headphone,url,Wireless,53,398\n")

		products, source, err := NewLoader(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.CorpusSourceSample, source)
		assert.Len(t, products, 7)
	})

	t.Run("header-only file", func(t *testing.T) {
		path := writeCorpusFile(t, validHeader)

		products, source, err := NewLoader(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.CorpusSourceSample, source)
		assert.Len(t, products, 7)
	})

	t.Run("ragged csv", func(t *testing.T) {
		path := writeCorpusFile(t, validHeader+
			"Sony WH-CH520,Sony,3989\n")

		products, source, err := NewLoader(path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.CorpusSourceSample, source)
		assert.Len(t, products, 7)
	})
}

func TestSample(t *testing.T) {
	products := Sample()
	require.Len(t, products, 7)

	t.Run("ships fixed categorical attributes", func(t *testing.T) {
		rockerz := products[1]
		assert.Equal(t, "boAt Rockerz 450, 15 HRS Battery, 40mm Drivers", rockerz.Name)
		assert.Equal(t, domain.FormFactorOnEar, rockerz.FormFactor)
		assert.Equal(t, domain.ConnectivityWireless, rockerz.Connectivity)
		assert.Equal(t, 15, rockerz.BatteryLifeHours)

		bassheads := products[2]
		assert.Equal(t, domain.FormFactorInEar, bassheads.FormFactor)
		assert.Equal(t, domain.ConnectivityWired, bassheads.Connectivity)
		assert.Equal(t, 0, bassheads.BatteryLifeHours)
	})

	t.Run("base model is left for the pipeline", func(t *testing.T) {
		for _, p := range products {
			assert.Empty(t, p.BaseModel, "product %q", p.Name)
		}
	})

	t.Run("fresh copy on every call", func(t *testing.T) {
		first := Sample()
		first[0].Name = "mutated"
		assert.NotEqual(t, "mutated", Sample()[0].Name)
	})
}
