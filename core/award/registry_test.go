package award

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jackzhaolt/plane-ticket-query/core/types"
)

func TestQualityOrdering(t *testing.T) {
	ordered := []Quality{QualityPoor, QualityFair, QualityGood, QualityGreat, QualityExceptional}
	for i := 1; i < len(ordered); i++ {
		if !ordered[i].AtLeast(ordered[i-1]) {
			t.Errorf("%s should meet threshold %s", ordered[i], ordered[i-1])
		}
		if ordered[i-1].AtLeast(ordered[i]) {
			t.Errorf("%s should not meet threshold %s", ordered[i-1], ordered[i])
		}
	}
}

func TestParseQualityRoundTrip(t *testing.T) {
	for _, q := range []Quality{QualityPoor, QualityFair, QualityGood, QualityGreat, QualityExceptional} {
		if got := ParseQuality(q.String()); got != q {
			t.Errorf("ParseQuality(%q) = %s, want %s", q.String(), got, q)
		}
	}
	if got := ParseQuality("nonsense"); got != QualityGood {
		t.Errorf("ParseQuality fallback = %s, want good", got)
	}
}

func TestRegistryLookupIsCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"standard", "Standard", "STANDARD", "ana", "delta"} {
		if _, ok := r.Get(name); !ok {
			t.Errorf("chart %q not found", name)
		}
	}
}

func TestRegistryEvaluateUnknownChart(t *testing.T) {
	r := NewRegistry()
	quality, explanation, expected := r.Evaluate("no-such-chart", 6740, 45000, types.CabinEconomy)
	if quality != QualityFair {
		t.Errorf("unknown chart classified %s, want fair", quality)
	}
	if expected != nil {
		t.Errorf("unknown chart returned expected range %v", expected)
	}
	if explanation != "Unknown award chart" {
		t.Errorf("explanation = %q", explanation)
	}
}

func TestLoadChartFiles(t *testing.T) {
	src := `
chart "aeroplan" {
  band {
    min_miles = 0
    max_miles = 4000

    economy {
      min = 35000
      max = 45000
    }

    business {
      min = 60000
      max = 85000
    }
  }

  band {
    min_miles = 4001
    max_miles = 9000

    economy {
      min = 55000
      max = 70000
    }
  }
}
`
	path := filepath.Join(t.TempDir(), "charts.hcl")
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.LoadChartFiles([]string{path}); err != nil {
		t.Fatalf("LoadChartFiles: %v", err)
	}

	chart, ok := r.Get("aeroplan")
	if !ok {
		t.Fatal("loaded chart not registered")
	}

	economy, ok := chart.ExpectedRange(3000, types.CabinEconomy)
	if !ok || economy.Min != 35000 || economy.Max != 45000 {
		t.Errorf("economy range = %v, want 35000-45000", economy)
	}

	// Second band publishes economy only; business falls back.
	business, ok := chart.ExpectedRange(5000, types.CabinBusiness)
	if !ok || business.Min != 55000 {
		t.Errorf("business fallback range = %v, want the economy 55000-70000 band", business)
	}
}

func TestLoadChartFilesRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts.hcl")
	if err := os.WriteFile(path, []byte(`chart "x" {`), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRegistry()
	if err := r.LoadChartFiles([]string{path}); err == nil {
		t.Fatal("malformed chart file accepted")
	}
}
