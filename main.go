package main

import (
	"log"
	"net/url"
	"os"
)

// logPlayer stands in for the browser's audio element. The real player
// polls /api/radio/now_playing for the current source list, so reload
// signals only need to be visible in the log here.
type logPlayer struct {
	logger Logger
}

func (p *logPlayer) Reload(sources []Source, play bool) {
	p.logger.Printf("player reload: %d sources, play=%v", len(sources), play)
}

// routeState is the routing collaborator on the server side: it
// remembers the last corrected path so handlers can report it back to
// the client for the address bar.
type routeState struct {
	path string
}

func (r *routeState) Push(path string) {
	r.path = path
}

func main() {
	var store SnapshotStore

	logger := log.New(os.Stderr, "", log.LstdFlags)
	cfg := LoadConfig()

	if cfg.DBURL != "" {
		if u, err := url.Parse(cfg.DBURL); err == nil {
			switch u.Scheme {
			case "sqlite":
				s, err := NewSQLiteSnapshotStore(u.Hostname() + u.Path)
				if err != nil {
					logger.Printf("sqlite unavailable, running without persistence: %v", err)
				} else {
					store = s
				}

			case "postgres":
				s, err := NewPostgresSnapshotStore(cfg.DBURL)
				if err != nil {
					logger.Printf("postgres unavailable, running without persistence: %v", err)
				} else {
					store = s
				}

			default:
				logger.Printf("unknown DB_URL scheme %q, running without persistence", u.Scheme)
			}
		}
	}

	sync := NewSynchronizer(store, logger)
	defer sync.Close()

	records, err := LoadSeed(cfg.StationsFile)
	if err != nil {
		log.Fatal("cannot read stations file: ", err)
	}
	reg, failed := Seed(records, logger)
	if len(failed) > 0 {
		logger.Printf("dropped %d invalid seed stations: %v", len(failed), failed)
	}
	sync.Reconcile(&reg)

	ed := NewEditor(&reg, sync)
	sess := NewSession(&reg, cfg.DefaultStation, &logPlayer{logger: logger}, &routeState{})

	// the initial transition happens once, before the API goes up
	if err := sess.Switch(cfg.DefaultStation, false); err != nil {
		logger.Printf("default station %q is not in the registry", cfg.DefaultStation)
	}

	r := NewHTTPRouter(&reg, ed, sess, []byte(cfg.JWTSecret))
	r.Logger.Fatal(r.Start(":" + cfg.Port))
}
