package main

import (
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"

	"truco-server/internal/config"
	"truco-server/pkg/db"
)

func main() {
	dbh := waitForDB()
	if err := db.Migrate(dbh, config.Instance().MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	logrus.Info("migrations complete")
}

func waitForDB() *sql.DB {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh, err := db.Open(config.Instance().PGDSN)
			if err == nil {
				return dbh
			}

			if err == db.ErrNoDSN {
				logrus.Fatal("TRUCO_PG_DSN is not configured")
			}

			logrus.WithError(err).Debug("database not ready")
			time.Sleep(time.Millisecond * 500)
		}
	}
}
