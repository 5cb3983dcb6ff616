package slate

// Scoreboard tracks objectives, their scores and the teams of a world.
// Each world has one scoreboard; players see the objectives displayed in
// its slots.
type Scoreboard interface {
	// Objective looks an objective up by name.
	Objective(name string) (Objective, bool)

	// ObjectiveInSlot returns the objective currently shown in slot.
	ObjectiveInSlot(slot DisplaySlot) (Objective, bool)

	// Objectives returns all objectives registered on the scoreboard.
	Objectives() []Objective

	// AddObjective registers an objective. It fails when an objective
	// with the same name already exists.
	AddObjective(o Objective) error

	// UpdateDisplaySlot shows o in the given slot, replacing whatever was
	// displayed there. A nil objective clears the slot.
	UpdateDisplaySlot(o Objective, slot DisplaySlot) error

	// RemoveObjective removes an objective and clears any slot showing it.
	RemoveObjective(o Objective)

	// Team looks a team up by name.
	Team(name string) (Team, bool)

	// MemberTeam returns the team a member name belongs to.
	MemberTeam(member string) (Team, bool)

	// Teams returns all teams registered on the scoreboard.
	Teams() []Team

	// RegisterTeam adds a team. It fails when a team with the same name
	// already exists.
	RegisterTeam(t Team) error
}

// Objective is a named score tracker displayed on a scoreboard.
type Objective interface {
	// Name returns the internal objective name.
	Name() string

	// DisplayName returns the name shown to players.
	DisplayName() string

	// SetDisplayName changes the name shown to players.
	SetDisplayName(name string)

	// Criterion returns the criterion scores of this objective track.
	Criterion() Criterion

	// DisplayMode returns how scores are rendered.
	DisplayMode() ObjectiveDisplayMode

	// Score returns the score entry for a subject, creating it at zero if
	// absent.
	Score(subject string) Score

	// HasScore reports whether the subject has a score on this objective.
	HasScore(subject string) bool

	// RemoveScore deletes the subject's score. Removing an absent score
	// is a no-op.
	RemoveScore(subject string)

	// Scores returns all score entries of the objective.
	Scores() []Score
}

// Score is a single subject's value on an objective.
type Score interface {
	// Subject returns the name the score is tracked under.
	Subject() string

	// Value returns the current score value.
	Value() int

	// SetValue sets the score value.
	SetValue(v int)
}

// Team groups members for shared display options and friendly-fire rules.
type Team interface {
	// Name returns the internal team name.
	Name() string

	// DisplayName returns the name shown to players.
	DisplayName() string

	// Color returns the color applied to member names.
	Color() TextColor

	// Prefix returns the text prepended to member names.
	Prefix() string

	// Suffix returns the text appended to member names.
	Suffix() string

	// AllowFriendlyFire reports whether members can damage each other.
	AllowFriendlyFire() bool

	// CanSeeFriendlyInvisibles reports whether members see invisible
	// teammates.
	CanSeeFriendlyInvisibles() bool

	// NameTagVisibility returns who can see member name tags.
	NameTagVisibility() Visibility

	// DeathMessageVisibility returns who sees member death messages.
	DeathMessageVisibility() Visibility

	// Members returns the member names of the team.
	Members() []string

	// AddMember adds a member. A member may only belong to one team per
	// scoreboard; registering moves it.
	AddMember(member string)

	// RemoveMember removes a member and reports whether it was present.
	RemoveMember(member string) bool
}

// TeamBuilder assembles a Team. Obtain one through CreateBuilder.
type TeamBuilder interface {
	ResettableBuilder[TeamBuilder]

	Name(name string) TeamBuilder
	DisplayName(name string) TeamBuilder
	Color(color TextColor) TeamBuilder
	Prefix(prefix string) TeamBuilder
	Suffix(suffix string) TeamBuilder
	AllowFriendlyFire(allow bool) TeamBuilder
	CanSeeFriendlyInvisibles(see bool) TeamBuilder
	NameTagVisibility(v Visibility) TeamBuilder
	DeathMessageVisibility(v Visibility) TeamBuilder
	Members(members ...string) TeamBuilder

	// Build creates the team. It fails when no name was set.
	Build() (Team, error)
}

// ObjectiveBuilder assembles an Objective. Obtain one through
// CreateBuilder.
type ObjectiveBuilder interface {
	ResettableBuilder[ObjectiveBuilder]

	Name(name string) ObjectiveBuilder
	DisplayName(name string) ObjectiveBuilder
	Criterion(c Criterion) ObjectiveBuilder
	DisplayMode(mode ObjectiveDisplayMode) ObjectiveBuilder

	// Build creates the objective. It fails when name or criterion is
	// missing.
	Build() (Objective, error)
}

// DisplaySlot is a position on screen an objective can be shown in.
type DisplaySlot struct {
	id   string
	name string
}

func (s DisplaySlot) ID() string   { return s.id }
func (s DisplaySlot) Name() string { return s.name }

var (
	DisplaySlotList      = DisplaySlot{id: "list", name: "List"}
	DisplaySlotSidebar   = DisplaySlot{id: "sidebar", name: "Sidebar"}
	DisplaySlotBelowName = DisplaySlot{id: "below_name", name: "Below Name"}
)

// Criterion decides when an objective's scores change automatically.
type Criterion struct {
	id   string
	name string
}

func (c Criterion) ID() string   { return c.id }
func (c Criterion) Name() string { return c.name }

var (
	CriterionDummy           = Criterion{id: "dummy", name: "Dummy"}
	CriterionTrigger         = Criterion{id: "trigger", name: "Trigger"}
	CriterionHealth          = Criterion{id: "health", name: "Health"}
	CriterionDeathCount      = Criterion{id: "death_count", name: "Deaths"}
	CriterionPlayerKillCount = Criterion{id: "player_kill_count", name: "Player Kills"}
	CriterionTotalKillCount  = Criterion{id: "total_kill_count", name: "Total Kills"}
)

// ObjectiveDisplayMode controls how an objective's scores are rendered.
type ObjectiveDisplayMode struct {
	id   string
	name string
}

func (m ObjectiveDisplayMode) ID() string   { return m.id }
func (m ObjectiveDisplayMode) Name() string { return m.name }

var (
	ObjectiveDisplayModeInteger = ObjectiveDisplayMode{id: "integer", name: "Integer"}
	ObjectiveDisplayModeHearts  = ObjectiveDisplayMode{id: "hearts", name: "Hearts"}
)

// Visibility controls which players can observe a team attribute.
type Visibility struct {
	id   string
	name string
}

func (v Visibility) ID() string   { return v.id }
func (v Visibility) Name() string { return v.name }

var (
	VisibilityAll        = Visibility{id: "all", name: "All"}
	VisibilityOwnTeam    = Visibility{id: "own_team", name: "Own Team"}
	VisibilityOtherTeams = Visibility{id: "other_teams", name: "Other Teams"}
	VisibilityNone       = Visibility{id: "none", name: "None"}
)

// TextColor is a chat formatting color.
type TextColor struct {
	id   string
	name string
	code byte
}

func (c TextColor) ID() string   { return c.id }
func (c TextColor) Name() string { return c.name }

// Code returns the legacy formatting code of the color.
func (c TextColor) Code() byte { return c.code }

var (
	TextColorBlack       = TextColor{id: "black", name: "Black", code: '0'}
	TextColorDarkBlue    = TextColor{id: "dark_blue", name: "Dark Blue", code: '1'}
	TextColorDarkGreen   = TextColor{id: "dark_green", name: "Dark Green", code: '2'}
	TextColorDarkAqua    = TextColor{id: "dark_aqua", name: "Dark Aqua", code: '3'}
	TextColorDarkRed     = TextColor{id: "dark_red", name: "Dark Red", code: '4'}
	TextColorDarkPurple  = TextColor{id: "dark_purple", name: "Dark Purple", code: '5'}
	TextColorGold        = TextColor{id: "gold", name: "Gold", code: '6'}
	TextColorGray        = TextColor{id: "gray", name: "Gray", code: '7'}
	TextColorDarkGray    = TextColor{id: "dark_gray", name: "Dark Gray", code: '8'}
	TextColorBlue        = TextColor{id: "blue", name: "Blue", code: '9'}
	TextColorGreen       = TextColor{id: "green", name: "Green", code: 'a'}
	TextColorAqua        = TextColor{id: "aqua", name: "Aqua", code: 'b'}
	TextColorRed         = TextColor{id: "red", name: "Red", code: 'c'}
	TextColorLightPurple = TextColor{id: "light_purple", name: "Light Purple", code: 'd'}
	TextColorYellow      = TextColor{id: "yellow", name: "Yellow", code: 'e'}
	TextColorWhite       = TextColor{id: "white", name: "White", code: 'f'}
)
