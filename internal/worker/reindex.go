package worker

import "context"

const ReindexJobName = "search-reindex"

// Reindexer pushes the question collection to the search index.
type Reindexer interface {
	ReindexSearch(ctx context.Context) error
}

type reindexJob struct {
	reindexer Reindexer
	schedule  string
}

func NewReindexJob(reindexer Reindexer, schedule string) Job {
	return &reindexJob{reindexer: reindexer, schedule: schedule}
}

func (j *reindexJob) Name() string     { return ReindexJobName }
func (j *reindexJob) Schedule() string { return j.schedule }

func (j *reindexJob) Run(ctx context.Context) error {
	return j.reindexer.ReindexSearch(ctx)
}
