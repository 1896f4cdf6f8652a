package trakt

import "time"

// IDs holds the identifiers Trakt knows for a show, movie or person
type IDs struct {
	Trakt  int64  `json:"trakt"`
	Slug   string `json:"slug,omitempty"`
	TVDB   int64  `json:"tvdb,omitempty"`
	IMDB   string `json:"imdb,omitempty"`
	TMDB   int64  `json:"tmdb,omitempty"`
	TVRage int64  `json:"tvrage,omitempty"`
}

// Show is the minimal show object embedded in list responses
type Show struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

// Movie is the minimal movie object embedded in list responses
type Movie struct {
	Title string `json:"title"`
	Year  int    `json:"year"`
	IDs   IDs    `json:"ids"`
}

// Airs describes when new episodes of a show air
type Airs struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

// ShowSummaryFull is a show with extended=full details
type ShowSummaryFull struct {
	Show
	Tagline               string     `json:"tagline,omitempty"`
	Overview              string     `json:"overview"`
	FirstAired            *time.Time `json:"first_aired"`
	Airs                  Airs       `json:"airs"`
	Runtime               int        `json:"runtime"`
	Certification         string     `json:"certification"`
	Network               string     `json:"network"`
	Country               string     `json:"country"`
	Trailer               string     `json:"trailer"`
	Homepage              string     `json:"homepage"`
	Status                string     `json:"status"`
	Rating                float64    `json:"rating"`
	Votes                 int        `json:"votes"`
	CommentCount          int        `json:"comment_count"`
	UpdatedAt             time.Time  `json:"updated_at"`
	Language              string     `json:"language"`
	AvailableTranslations []string   `json:"available_translations"`
	Genres                []string   `json:"genres"`
	AiredEpisodes         int        `json:"aired_episodes"`
}

// MovieSummaryFull is a movie with extended=full details
type MovieSummaryFull struct {
	Movie
	Tagline               string    `json:"tagline"`
	Overview              string    `json:"overview"`
	Released              string    `json:"released"`
	Runtime               int       `json:"runtime"`
	Country               string    `json:"country"`
	Trailer               string    `json:"trailer"`
	Homepage              string    `json:"homepage"`
	Status                string    `json:"status"`
	Rating                float64   `json:"rating"`
	Votes                 int       `json:"votes"`
	CommentCount          int       `json:"comment_count"`
	UpdatedAt             time.Time `json:"updated_at"`
	Language              string    `json:"language"`
	AvailableTranslations []string  `json:"available_translations"`
	Genres                []string  `json:"genres"`
	Certification         string    `json:"certification"`
}

// Person is a cast or crew member
type Person struct {
	Name string `json:"name"`
	IDs  IDs    `json:"ids"`
}

// CastMember is a person playing one or more characters
type CastMember struct {
	Characters   []string `json:"characters"`
	EpisodeCount int      `json:"episode_count,omitempty"`
	Person       Person   `json:"person"`
}

// CrewMember is a person holding one or more jobs
type CrewMember struct {
	Jobs         []string `json:"jobs"`
	EpisodeCount int      `json:"episode_count,omitempty"`
	Person       Person   `json:"person"`
}

// People is the cast and crew of a show or movie. Crew is keyed by
// department, e.g. "directing", "writing", "sound".
type People struct {
	Cast []CastMember            `json:"cast"`
	Crew map[string][]CrewMember `json:"crew"`
}

// ShowPeople is the cast and crew of a show
type ShowPeople = People

// MoviePeople is the cast and crew of a movie
type MoviePeople = People

// TrendingShow is a show being watched right now
type TrendingShow struct {
	Watchers int  `json:"watchers"`
	Show     Show `json:"show"`
}

// TrendingMovie is a movie being watched right now
type TrendingMovie struct {
	Watchers int   `json:"watchers"`
	Movie    Movie `json:"movie"`
}

// RecommendedShow is a show with the number of users recommending it
type RecommendedShow struct {
	UserCount int  `json:"user_count"`
	Show      Show `json:"show"`
}

// RecommendedMovie is a movie with the number of users recommending it
type RecommendedMovie struct {
	UserCount int   `json:"user_count"`
	Movie     Movie `json:"movie"`
}

// PlayedWatchedCollectedShow is a row of the played, watched and collected show listings
type PlayedWatchedCollectedShow struct {
	WatcherCount   int  `json:"watcher_count"`
	PlayCount      int  `json:"play_count"`
	CollectedCount int  `json:"collected_count"`
	CollectorCount int  `json:"collector_count"`
	Show           Show `json:"show"`
}

// PlayedWatchedCollectedMovie is a row of the played, watched and collected movie listings
type PlayedWatchedCollectedMovie struct {
	WatcherCount   int   `json:"watcher_count"`
	PlayCount      int   `json:"play_count"`
	CollectedCount int   `json:"collected_count"`
	Movie          Movie `json:"movie"`
}

// AnticipatedShow is a show with the number of lists it appears on
type AnticipatedShow struct {
	ListCount int  `json:"list_count"`
	Show      Show `json:"show"`
}

// AnticipatedMovie is a movie with the number of lists it appears on
type AnticipatedMovie struct {
	ListCount int   `json:"list_count"`
	Movie     Movie `json:"movie"`
}

// BoxOfficeShow is a box office row for a show
type BoxOfficeShow struct {
	Revenue int64 `json:"revenue"`
	Show    Show  `json:"show"`
}

// BoxOfficeMovie is a box office row for a movie, revenue in USD
type BoxOfficeMovie struct {
	Revenue int64 `json:"revenue"`
	Movie   Movie `json:"movie"`
}

// UpdatedShow is a show updated since the requested start date
type UpdatedShow struct {
	UpdatedAt time.Time `json:"updated_at"`
	Show      Show      `json:"show"`
}

// UpdatedMovie is a movie updated since the requested start date
type UpdatedMovie struct {
	UpdatedAt time.Time `json:"updated_at"`
	Movie     Movie     `json:"movie"`
}

// WatchedMovie is a movie in a user's watch history
type WatchedMovie struct {
	Plays         int       `json:"plays"`
	LastWatchedAt time.Time `json:"last_watched_at"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	Movie         Movie     `json:"movie"`
}

// WatchedShow is a show in a user's watch history
type WatchedShow struct {
	Plays         int             `json:"plays"`
	LastWatchedAt time.Time       `json:"last_watched_at"`
	LastUpdatedAt time.Time       `json:"last_updated_at"`
	ResetAt       *time.Time      `json:"reset_at"`
	Show          Show            `json:"show"`
	Seasons       []WatchedSeason `json:"seasons,omitempty"`
}

// WatchedSeason groups the watched episodes of a season
type WatchedSeason struct {
	Number   int              `json:"number"`
	Episodes []WatchedEpisode `json:"episodes"`
}

// WatchedEpisode is a watched episode with its play count
type WatchedEpisode struct {
	Number        int       `json:"number"`
	Plays         int       `json:"plays"`
	LastWatchedAt time.Time `json:"last_watched_at"`
}

// EpisodeCount returns the number of distinct episodes watched
func (w *WatchedShow) EpisodeCount() int {
	n := 0
	for _, season := range w.Seasons {
		n += len(season.Episodes)
	}
	return n
}
