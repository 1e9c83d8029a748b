package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/Decentr-net/aegis/internal/entities"
	"github.com/Decentr-net/aegis/internal/service"
	"github.com/Decentr-net/aegis/internal/service/impl"
	"github.com/Decentr-net/aegis/internal/storage/postgres"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	Seed       int64 `long:"seed" env:"SEED" default:"0" description:"random seed, 0 means random"`
	Users      int   `long:"users" env:"USERS" default:"50" description:"count of users to create"`
	Moderators int   `long:"moderators" env:"MODERATORS" default:"3" description:"count of moderators to create"`
	Articles   int   `long:"articles" env:"ARTICLES" default:"5" description:"maximal count of articles per user"`
	Activity   int   `long:"activity" env:"ACTIVITY" default:"500" description:"count of random likes, stars and comments"`
}{}

var categories = []string{"news", "science", "health", "sports", "travel", "technology"}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "filldb"
	parser.LongDescription = "Fills database with fake users, articles and activity"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("filldb started")
	logrus.Infof("%+v", opts)

	gofakeit.Seed(opts.Seed)

	db := mustGetDB()
	srv := impl.New(postgres.New(db), time.Now)
	ctx := context.Background()

	users := make([]string, 0, opts.Users+opts.Moderators)
	moderators := make([]string, 0, opts.Moderators)

	for i := 0; i < opts.Users+opts.Moderators; i++ {
		role := entities.RegularRole
		if i < opts.Moderators {
			role = entities.ModeratorRole
		}

		u := entities.User{
			ID:       uuid.New().String(),
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Role:     role,
		}

		if err := srv.CreateUser(ctx, &u, &entities.Profile{
			DisplayName: gofakeit.Name(),
			Bio:         gofakeit.Sentence(12),
			Avatar:      gofakeit.URL(),
		}); err != nil {
			logrus.WithError(err).Fatal("failed to create user")
		}

		if role == entities.ModeratorRole {
			moderators = append(moderators, u.ID)
		}
		users = append(users, u.ID)
	}

	logrus.Infof("%d users created", len(users))

	var articles []string

	for _, author := range users {
		for i := gofakeit.Number(0, opts.Articles); i > 0; i-- {
			a := entities.Article{
				Category: gofakeit.RandomString(categories),
				Title:    gofakeit.Sentence(5),
				Subtitle: gofakeit.Sentence(10),
				Text:     gofakeit.Paragraph(3, 5, 12, "\n"),
				Status:   entities.ActiveStatus,
			}

			if err := srv.CreateArticle(ctx, &a, author); err != nil {
				logrus.WithError(err).Fatal("failed to create article")
			}

			articles = append(articles, a.ID)
		}
	}

	logrus.Infof("%d articles created", len(articles))

	if len(articles) == 0 {
		return
	}

	var comments []string

	for i := 0; i < opts.Activity; i++ {
		actor := gofakeit.RandomString(users)
		article := gofakeit.RandomString(articles)

		switch gofakeit.Number(0, 4) {
		case 0, 1:
			err = srv.ToggleLike(ctx, article, actor)
		case 2:
			err = srv.ToggleStar(ctx, gofakeit.RandomString(users), actor)
		case 3:
			var c *entities.Comment
			if c, err = srv.PostComment(ctx, article, gofakeit.Sentence(15), actor); err == nil {
				comments = append(comments, c.ID)
			}
		case 4:
			if len(comments) == 0 {
				continue
			}
			comment := gofakeit.RandomString(comments)
			if err = srv.ToggleCommentLike(ctx, comment, actor); err == nil && gofakeit.Number(0, 9) == 0 {
				err = report(ctx, srv, comment, actor, moderators)
			}
		}

		if err != nil {
			logrus.WithError(err).Fatal("failed to apply activity")
		}
	}

	logrus.Infof("%d activities applied", opts.Activity)
}

func report(ctx context.Context, srv service.Service, comment, actor string, moderators []string) error {
	t, err := srv.ReportComment(ctx, comment, actor)
	if err != nil {
		return err
	}

	if len(moderators) == 0 || gofakeit.Bool() {
		return nil
	}

	return srv.AssignTicket(ctx, t.ID, gofakeit.RandomString(moderators))
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
