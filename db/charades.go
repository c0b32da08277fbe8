package db

import (
	"context"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/Masterminds/squirrel"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/georgysavva/scany/pgxscan"
)

// Category is what a charade's solution is the title of.
type Category string

const (
	CategoryAnime Category = "anime"
	CategoryGame  Category = "game"
	CategoryTV    Category = "tv"
	CategoryMovie Category = "movie"
)

// Categories in display order.
var Categories = []Category{CategoryAnime, CategoryGame, CategoryTV, CategoryMovie}

func (c Category) String() string {
	switch c {
	case CategoryTV:
		return "TV show"
	case "":
		return "Unknown"
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Difficulty is how hard a charade is.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) String() string {
	if d == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// Charade is an emoji puzzle whose solution is a title.
type Charade struct {
	ID         int64
	Category   Category
	Difficulty Difficulty
	Hint       string
	Puzzle     string
	Solution   string
	UserID     discord.UserID
	Public     bool
	CreatedAt  time.Time
}

// Solves returns true if guess matches the solution, ignoring case and surrounding whitespace.
func (c Charade) Solves(guess string) bool {
	return strings.EqualFold(strings.TrimSpace(guess), strings.TrimSpace(c.Solution))
}

// AddCharade saves a new charade and returns it with its ID.
// Returns ErrDuplicate if the puzzle already exists with the same solution.
func (db *DB) AddCharade(ctx context.Context, c Charade) (Charade, error) {
	sql, args, err := sq.Insert("charades").
		Columns("category", "difficulty", "hint", "puzzle", "solution", "user_id", "public").
		Values(c.Category, c.Difficulty, c.Hint, c.Puzzle, c.Solution, c.UserID, c.Public).
		Suffix("RETURNING *").
		ToSql()
	if err != nil {
		return c, errors.Wrap(err, "building sql")
	}
	db.count()

	var out Charade
	err = pgxscan.Get(ctx, db, &out, sql, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return c, ErrDuplicate
		}
		return c, errors.Wrap(err, "inserting charade")
	}
	return out, nil
}

// RandomCharade returns a random public charade, optionally limited to a category.
func (db *DB) RandomCharade(ctx context.Context, category Category) (Charade, error) {
	sql, args, err := randomCharadeQuery(category)
	if err != nil {
		return Charade{}, errors.Wrap(err, "building sql")
	}
	db.count()

	var cs []Charade
	err = pgxscan.Select(ctx, db, &cs, sql, args...)
	if err != nil {
		return Charade{}, errors.Wrap(err, "getting charade")
	}

	if len(cs) == 0 {
		return Charade{}, ErrNotFound
	}
	return cs[0], nil
}

// CharadeCount returns the number of public charades.
func (db *DB) CharadeCount(ctx context.Context) (n int64, err error) {
	db.count()

	err = db.QueryRow(ctx, "select count(*) from charades where public").Scan(&n)
	return n, errors.Wrap(err, "counting charades")
}

func randomCharadeQuery(category Category) (string, []interface{}, error) {
	q := sq.Select("*").From("charades").Where("public")
	if category != "" {
		q = q.Where(squirrel.Eq{"category": category})
	}
	return q.OrderBy("random()").Limit(1).ToSql()
}
