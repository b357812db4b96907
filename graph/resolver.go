package graph

import (
	"context"
	_ "embed"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
	"taskboard-api/taskboard/database"
	"taskboard-api/taskboard/services"
)

//go:embed schema.graphql
var Schema string

const maxQueryDepth = 10

// Resolver is the root resolver for both Query and Mutation. Every task
// field delegates to the task service; a NOT_FOUND outcome becomes null
// and a panic becomes an INTERNAL "Failed to <op>" error.
type Resolver struct {
	db    *database.Database
	tasks services.TaskServiceInterface
}

func NewResolver(db *database.Database, tasks services.TaskServiceInterface) *Resolver {
	return &Resolver{db: db, tasks: tasks}
}

// NewSchema parses the task schema and binds it to the resolver.
func NewSchema(resolver *Resolver, log *logrus.Logger) (*graphql.Schema, error) {
	return graphql.ParseSchema(Schema, resolver,
		graphql.MaxDepth(maxQueryDepth),
		graphql.Logger(&panicLogger{log: log}),
	)
}

func (r *Resolver) Hello() string {
	return "Hello World!"
}

func (r *Resolver) Tasks(ctx context.Context, args struct{ Search *string }) (resolvers []*TaskResolver, err error) {
	defer services.RecoverOperation(services.OpListTasks, &err)

	tasks, err := r.tasks.ListTasks(ctx, r.db, args.Search)
	if err != nil {
		return nil, err
	}

	resolvers = make([]*TaskResolver, 0, len(tasks))
	for i := range tasks {
		resolvers = append(resolvers, newTaskResolver(&tasks[i]))
	}
	return resolvers, nil
}

func (r *Resolver) Task(ctx context.Context, args struct{ ID graphql.ID }) (task *TaskResolver, err error) {
	defer services.RecoverOperation(services.OpGetTask, &err)
	return nullIfNotFound(r.tasks.GetTaskByID(ctx, r.db, string(args.ID)))
}

func (r *Resolver) AddTask(ctx context.Context, args struct{ Title string }) (task *TaskResolver, err error) {
	defer services.RecoverOperation(services.OpCreateTask, &err)

	created, err := r.tasks.CreateTask(ctx, r.db, args.Title)
	if err != nil {
		return nil, err
	}
	return newTaskResolver(created), nil
}

func (r *Resolver) ToggleTask(ctx context.Context, args struct{ ID graphql.ID }) (task *TaskResolver, err error) {
	defer services.RecoverOperation(services.OpToggleTask, &err)
	return nullIfNotFound(r.tasks.ToggleTask(ctx, r.db, string(args.ID)))
}

func (r *Resolver) DeleteTask(ctx context.Context, args struct{ ID graphql.ID }) (task *TaskResolver, err error) {
	defer services.RecoverOperation(services.OpDeleteTask, &err)
	return nullIfNotFound(r.tasks.DeleteTask(ctx, r.db, string(args.ID)))
}
