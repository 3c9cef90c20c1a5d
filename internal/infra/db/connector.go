package db

import (
	"sync"

	"nightlife-feedback/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"gorm.io/gorm"
)

// Connector opens each backend on first use, so a memory-only deployment
// never dials a database.
type Connector struct {
	dbCfg    config.DBConfig
	mongoCfg config.MongoConfig

	mu       sync.Mutex
	pool     *pgxpool.Pool
	gormDB   *gorm.DB
	mongoDB  *mongo.Database
	cleanups []func()
}

func NewConnector(dbCfg config.DBConfig, mongoCfg config.MongoConfig) *Connector {
	return &Connector{dbCfg: dbCfg, mongoCfg: mongoCfg}
}

func (c *Connector) Postgres() (*pgxpool.Pool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.postgresLocked()
}

func (c *Connector) postgresLocked() (*pgxpool.Pool, error) {
	if c.pool != nil {
		return c.pool, nil
	}
	pool, cleanup, err := Connect(c.dbCfg)
	if err != nil {
		return nil, err
	}
	c.cleanups = append(c.cleanups, cleanup)
	c.pool = pool
	return pool, nil
}

// Gorm shares the pgx pool.
func (c *Connector) Gorm() (*gorm.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gormDB != nil {
		return c.gormDB, nil
	}
	pool, err := c.postgresLocked()
	if err != nil {
		return nil, err
	}
	gdb, cleanup, err := OpenGorm(pool)
	if err != nil {
		return nil, err
	}
	c.cleanups = append(c.cleanups, cleanup)
	c.gormDB = gdb
	return gdb, nil
}

func (c *Connector) Mongo() (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mongoDB != nil {
		return c.mongoDB, nil
	}
	mdb, cleanup, err := ConnectMongo(c.mongoCfg)
	if err != nil {
		return nil, err
	}
	c.cleanups = append(c.cleanups, cleanup)
	c.mongoDB = mdb
	return mdb, nil
}

// Close releases connections in reverse order of opening.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.cleanups) - 1; i >= 0; i-- {
		if c.cleanups[i] != nil {
			c.cleanups[i]()
		}
	}
	c.cleanups = nil
	c.pool, c.gormDB, c.mongoDB = nil, nil, nil
}
