package question

import (
	"testing"
	"time"

	"anoa.com/askify/internal/bootstrap"
	"anoa.com/askify/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(questions []entity.Question) []string {
	out := make([]string, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

func TestFilterQuestions_Default(t *testing.T) {
	got := FilterQuestions(bootstrap.MockQuestions(), DefaultCriteria())
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
}

func TestFilterQuestions_Subject(t *testing.T) {
	c := DefaultCriteria()
	c.Subject = "Frontend Development"

	got := FilterQuestions(bootstrap.MockQuestions(), c)
	require.NotEmpty(t, got)
	for _, q := range got {
		assert.Equal(t, "Frontend Development", q.Subject)
	}

	c.Subject = "frontend development"
	assert.Empty(t, FilterQuestions(bootstrap.MockQuestions(), c))
}

func TestFilterQuestions_Tags(t *testing.T) {
	c := DefaultCriteria()
	c.Tags = []string{"react"}
	assert.Equal(t, []string{"1", "4"}, ids(FilterQuestions(bootstrap.MockQuestions(), c)))

	c.Tags = []string{"mongodb", "python"}
	assert.Equal(t, []string{"2", "3"}, ids(FilterQuestions(bootstrap.MockQuestions(), c)))

	c.Tags = []string{"rust"}
	assert.Empty(t, FilterQuestions(bootstrap.MockQuestions(), c))
}

func TestFilterQuestions_Flags(t *testing.T) {
	c := DefaultCriteria()
	c.ShowAnsweredOnly = true
	got := FilterQuestions(bootstrap.MockQuestions(), c)
	require.Len(t, got, 3)
	for _, q := range got {
		assert.True(t, q.IsAnswered)
	}

	c.ShowHotOnly = true
	assert.Equal(t, []string{"1", "4"}, ids(FilterQuestions(bootstrap.MockQuestions(), c)))
}

func TestFilterQuestions_Sort(t *testing.T) {
	tests := []struct {
		sortBy SortBy
		want   []string
	}{
		{SortVotes, []string{"4", "1", "2", "3"}},
		{SortAnswers, []string{"4", "3", "1", "2"}},
		{SortViews, []string{"4", "1", "2", "3"}},
		{SortNewest, []string{"1", "2", "3", "4"}},
		{SortBy("unknown"), []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			c := DefaultCriteria()
			c.SortBy = tt.sortBy
			assert.Equal(t, tt.want, ids(FilterQuestions(bootstrap.MockQuestions(), c)))
		})
	}
}

func TestFilterQuestions_StableTies(t *testing.T) {
	now := time.Now()
	input := []entity.Question{
		{ID: "a", Votes: 5, CreatedAt: now},
		{ID: "b", Votes: 10, CreatedAt: now},
		{ID: "c", Votes: 5, CreatedAt: now},
	}

	c := DefaultCriteria()
	c.SortBy = SortVotes
	assert.Equal(t, []string{"b", "a", "c"}, ids(FilterQuestions(input, c)))

	c.SortBy = SortNewest
	assert.Equal(t, []string{"a", "b", "c"}, ids(FilterQuestions(input, c)))
}

func TestFilterQuestions_DoesNotMutateInput(t *testing.T) {
	input := bootstrap.MockQuestions()
	before := ids(input)

	c := DefaultCriteria()
	c.SortBy = SortVotes
	c.ShowHotOnly = true
	_ = FilterQuestions(input, c)

	assert.Equal(t, before, ids(input))
}

func TestAvailableTags(t *testing.T) {
	tags := AvailableTags(bootstrap.MockQuestions())
	assert.Equal(t, "react", tags[0])
	assert.Len(t, tags, 15)

	seen := map[string]bool{}
	for _, tag := range tags {
		assert.False(t, seen[tag], "duplicate tag %s", tag)
		seen[tag] = true
	}

	assert.Empty(t, AvailableTags(nil))
}

func TestSubjects(t *testing.T) {
	subjects := Subjects()
	assert.Equal(t, entity.SubjectAll, subjects[0])
	assert.Len(t, subjects, len(entity.Subjects)+1)
}

func TestFilterQuestions_Idempotent(t *testing.T) {
	input := bootstrap.MockQuestions()

	for _, sortBy := range []SortBy{SortNewest, SortVotes, SortAnswers, SortViews} {
		c := DefaultCriteria()
		c.SortBy = sortBy
		c.ShowAnsweredOnly = true

		once := FilterQuestions(input, c)
		twice := FilterQuestions(once, c)
		assert.Equal(t, ids(once), ids(twice), string(sortBy))
	}
}
