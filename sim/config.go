package sim

// Population describes the cohort layout of one replication's asset
// population: NumYears cohorts of AssetsPerYear assets each, where cohort y
// arrives at a random offset inside [y*YearLength, (y+1)*YearLength).
type Population struct {
	NumYears      int     `yaml:"num_years"`       // number of arrival cohorts
	AssetsPerYear int     `yaml:"assets_per_year"` // assets entering per cohort
	YearLength    float64 `yaml:"year_length"`     // cohort window in simulated weeks
}

// TotalAssets returns the population size across all cohorts.
func (p Population) TotalAssets() int {
	return p.NumYears * p.AssetsPerYear
}

// Validate checks the cohort layout before any replication runs.
func (p Population) Validate() error {
	if p.NumYears <= 0 {
		return configErrorf("population: num_years must be positive, got %d", p.NumYears)
	}
	if p.AssetsPerYear <= 0 {
		return configErrorf("population: assets_per_year must be positive, got %d", p.AssetsPerYear)
	}
	if p.YearLength <= 0 {
		return configErrorf("population: year_length must be positive, got %v", p.YearLength)
	}
	return nil
}

// YearOf maps a 1-based asset id to its cohort index. Asset ids outside the
// configured population are a configuration fault, not a runtime one.
func (p Population) YearOf(assetID int) (int, error) {
	if assetID < 1 || assetID > p.TotalAssets() {
		return 0, configErrorf("asset id %d outside population of %d", assetID, p.TotalAssets())
	}
	return (assetID - 1) / p.AssetsPerYear, nil
}
