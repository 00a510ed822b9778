package commands

import (
	"fmt"
	"io"

	"github.com/jrissiusp/SnakeGameMultiplayer/controller"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/filestore"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/redisstore"
	"github.com/jrissiusp/SnakeGameMultiplayer/controller/sqlstore"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	storeBackend = "file"
	storeDir     = ""
	redisURL     = "redis://localhost:6379"
	postgresURL  = "postgres://localhost:5432/snakebattle?sslmode=disable"
)

func addStoreFlags(c *cobra.Command) {
	c.PersistentFlags().StringVarP(&storeBackend, "store", "s", storeBackend, "recording store, as one of: [inmem, file, redis, sql]")
	c.PersistentFlags().StringVar(&storeDir, "store-dir", storeDir, "directory of the file store, defaults to ~/.snakebattle/games")
	c.PersistentFlags().StringVar(&redisURL, "redis-url", redisURL, "url of the redis store")
	c.PersistentFlags().StringVar(&postgresURL, "postgres-url", postgresURL, "url of the sql store")
}

// openStore returns the configured store wrapped with metrics and a func
// that releases it.
func openStore() (controller.Store, func(), error) {
	var (
		store controller.Store
		err   error
	)
	switch storeBackend {
	case "inmem":
		store = controller.InMemStore()
	case "file":
		dir := storeDir
		if dir == "" {
			dir = filestore.DefaultDir()
		}
		store = filestore.NewFileStore(dir)
	case "redis":
		var rs *redisstore.RedisStore
		rs, err = redisstore.NewRedisStore(redisURL)
		if err == nil {
			store = rs
		}
	case "sql":
		var ss *sqlstore.Store
		ss, err = sqlstore.NewSQLStore(postgresURL)
		if err == nil {
			store = ss
		}
	default:
		return nil, nil, fmt.Errorf("invalid store %q, use one of: inmem, file, redis, sql", storeBackend)
	}
	if err != nil {
		return nil, nil, err
	}

	release := func() {
		if c, ok := store.(io.Closer); ok {
			if err := c.Close(); err != nil {
				log.WithError(err).Error("unable to close store")
			}
		}
	}
	return controller.InstrumentStore(store), release, nil
}
