package profile

// PlayerData is the biographical block of a profile. All fields are free-form text.
type PlayerData struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	Team         string `json:"team"`
	Number       string `json:"number"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	BirthDate    string `json:"birthDate"`
	Hometown     string `json:"hometown"`
	Bats         string `json:"bats"`
	Throws       string `json:"throws"`
	ProfilePhoto string `json:"profilePhoto"`
}

// BattingStats holds counting stats and the display rates as entered (rates are not recomputed).
type BattingStats struct {
	Games          int    `json:"games"`
	AtBats         int    `json:"atBats"`
	Runs           int    `json:"runs"`
	Hits           int    `json:"hits"`
	Doubles        int    `json:"doubles"`
	Triples        int    `json:"triples"`
	HomeRuns       int    `json:"homeRuns"`
	RBI            int    `json:"rbi"`
	Walks          int    `json:"walks"`
	Strikeouts     int    `json:"strikeouts"`
	StolenBases    int    `json:"stolenBases"`
	CaughtStealing int    `json:"caughtStealing"`
	BattingAvg     string `json:"battingAvg"`
	OnBasePerc     string `json:"onBasePerc"`
	SluggingPerc   string `json:"sluggingPerc"`
	OPS            string `json:"ops"`
}

type PitchingStats struct {
	Games          int    `json:"games"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	Saves          int    `json:"saves"`
	InningsPitched string `json:"inningsPitched"`
	Hits           int    `json:"hits"`
	Runs           int    `json:"runs"`
	EarnedRuns     int    `json:"earnedRuns"`
	Walks          int    `json:"walks"`
	Strikeouts     int    `json:"strikeouts"`
	HomeRuns       int    `json:"homeRuns"`
	ERA            string `json:"era"`
	WHIP           string `json:"whip"`
}

type FieldingStats struct {
	Games        int    `json:"games"`
	Putouts      int    `json:"putouts"`
	Assists      int    `json:"assists"`
	Errors       int    `json:"errors"`
	DoublePlays  int    `json:"doublePlays"`
	FieldingPerc string `json:"fieldingPerc"`
}

// Theme holds the four hex colors the front end paints with.
type Theme struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
}

// Profile is the typed view of a profile document. Spray charts and hype videos
// are opaque to the server; their order is display order.
type Profile struct {
	PlayerData    PlayerData    `json:"playerData"`
	BattingStats  BattingStats  `json:"battingStats"`
	PitchingStats PitchingStats `json:"pitchingStats"`
	FieldingStats FieldingStats `json:"fieldingStats"`
	SprayCharts   []any         `json:"sprayCharts"`
	HypeVideos    []any         `json:"hypeVideos"`
	Theme         Theme         `json:"theme"`
}

// Default returns the profile written on first start and served when the stored one is unreadable.
func Default() Profile {
	return Profile{
		PlayerData: PlayerData{
			Name:         "Mike Trout",
			Position:     "CF",
			Team:         "Los Angeles Angels",
			Number:       "27",
			Height:       `6'2"`,
			Weight:       "235 lbs",
			BirthDate:    "August 7, 1991",
			Hometown:     "Vineland, NJ",
			Bats:         "R",
			Throws:       "R",
			ProfilePhoto: "https://via.placeholder.com/300x400/1f4e79/ffffff?text=Player+Photo",
		},
		BattingStats: BattingStats{
			Games:          140,
			AtBats:         523,
			Runs:           104,
			Hits:           159,
			Doubles:        32,
			Triples:        2,
			HomeRuns:       40,
			RBI:            95,
			Walks:          78,
			Strikeouts:     128,
			StolenBases:    20,
			CaughtStealing: 3,
			BattingAvg:     ".304",
			OnBasePerc:     ".390",
			SluggingPerc:   ".585",
			OPS:            ".975",
		},
		PitchingStats: PitchingStats{
			InningsPitched: "0.0",
			ERA:            "0.00",
			WHIP:           "0.00",
		},
		FieldingStats: FieldingStats{
			Games:        138,
			Putouts:      378,
			Assists:      12,
			Errors:       3,
			DoublePlays:  4,
			FieldingPerc: ".992",
		},
		SprayCharts: []any{},
		HypeVideos:  []any{},
		Theme: Theme{
			PrimaryColor:    "#1f4e79",
			SecondaryColor:  "#c41e3a",
			AccentColor:     "#ffffff",
			BackgroundColor: "#f8f9fa",
		},
	}
}
