package model

// GBD identifiers that are fixed for every extraction. The remote service
// owns the meaning of these codes; we only pass them through.
const (
	AllCausesID      = 294 // cause_id for all causes combined
	MeasureDeaths    = 1
	MeasureDALYs     = 2
	SourceCodCorrect = "codcorrect"
	StatusBest       = "best"
)

// PopulationYearIDs is the fixed year set used for population pulls.
var PopulationYearIDs = []int{1990, 1995, 2000, 2005, 2010, 2013, 2015}

// AllSexIDs covers male (1), female (2) and both combined (3).
var AllSexIDs = []int{1, 2, 3}

// StandardAgeGroupIDs returns the full GBD age group enumeration
// {2..21, 30..33}. Partial age selections are not supported: every filter
// carries the full set of 24 groups.
func StandardAgeGroupIDs() []int {
	ids := make([]int, 0, 24)
	for id := 2; id <= 21; id++ {
		ids = append(ids, id)
	}
	for id := 30; id <= 33; id++ {
		ids = append(ids, id)
	}
	return ids
}

// DrawsFilter selects draw-level cause estimates from the remote service.
type DrawsFilter struct {
	CauseID     int    `json:"cause_id"`
	LocationIDs []int  `json:"location_ids"`
	AgeGroupIDs []int  `json:"age_group_ids"`
	MeasureIDs  []int  `json:"measure_ids"`
	Source      string `json:"source"`
	Status      string `json:"status"`
	GBDRoundID  int    `json:"gbd_round_id"`
}

// PopulationFilter selects scaled population counts from the remote service.
type PopulationFilter struct {
	LocationID   int   `json:"location_id"`
	YearIDs      []int `json:"year_ids"`
	SexIDs       []int `json:"sex_ids"`
	AgeGroupIDs  []int `json:"age_group_ids"`
	IncludeNames bool  `json:"include_names"`
}

// DrawsFilterFor builds the filter for a deaths-draws pull. Everything but
// the location and round is fixed. Construction cannot fail; a bad location
// id only shows up as an empty or failed remote response.
func DrawsFilterFor(locationID, gbdRoundID int) DrawsFilter {
	return DrawsFilter{
		CauseID:     AllCausesID,
		LocationIDs: []int{locationID},
		AgeGroupIDs: StandardAgeGroupIDs(),
		MeasureIDs:  []int{MeasureDeaths},
		Source:      SourceCodCorrect,
		Status:      StatusBest,
		GBDRoundID:  gbdRoundID,
	}
}

// PopulationFilterFor builds the filter for a population pull.
func PopulationFilterFor(locationID int) PopulationFilter {
	return PopulationFilter{
		LocationID:   locationID,
		YearIDs:      append([]int(nil), PopulationYearIDs...),
		SexIDs:       append([]int(nil), AllSexIDs...),
		AgeGroupIDs:  StandardAgeGroupIDs(),
		IncludeNames: true,
	}
}
