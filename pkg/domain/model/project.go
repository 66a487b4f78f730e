package model

import (
	"fmt"
	"slices"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/domain/types"
)

// Database is the database engine selected for the project
type Database string

const (
	DatabaseNone    Database = ""
	DatabaseMySQL   Database = "mysql"
	DatabaseMariaDB Database = "mariadb"
	DatabasePgSQL   Database = "pgsql"
	DatabaseSQLite  Database = "sqlite"
	DatabaseSQLSrv  Database = "sqlsrv"
)

// Databases lists every supported database engine
var Databases = []Database{
	DatabaseMySQL,
	DatabaseMariaDB,
	DatabasePgSQL,
	DatabaseSQLite,
	DatabaseSQLSrv,
}

// IsServer reports whether the database needs a running server and credentials
func (x Database) IsServer() bool {
	return x != DatabaseNone && x != DatabaseSQLite
}

// QueueDriver is the queue connection selected for the project
type QueueDriver string

const (
	QueueSync       QueueDriver = ""
	QueueDatabase   QueueDriver = "database"
	QueueRedis      QueueDriver = "redis"
	QueueBeanstalkd QueueDriver = "beanstalkd"
	QueueSQS        QueueDriver = "sqs"
)

// QueueDrivers lists every supported asynchronous queue driver
var QueueDrivers = []QueueDriver{
	QueueDatabase,
	QueueRedis,
	QueueBeanstalkd,
	QueueSQS,
}

// IsAsync reports whether jobs are processed by a worker
func (x QueueDriver) IsAsync() bool {
	return x != QueueSync
}

// Feature is an optional integration that can be selected for the project
type Feature string

const (
	FeatureSail      Feature = "sail"
	FeatureHorizon   Feature = "horizon"
	FeatureScheduler Feature = "scheduler"
	FeatureFrontend  Feature = "frontend"
	FeatureScout     Feature = "scout"
	FeatureTelescope Feature = "telescope"
)

// Features lists every selectable feature in definition order
var Features = []Feature{
	FeatureSail,
	FeatureHorizon,
	FeatureScheduler,
	FeatureFrontend,
	FeatureScout,
	FeatureTelescope,
}

// Metadata describes the project being created
type Metadata struct {
	Vendor      string `json:"vendor" toml:"vendor" yaml:"vendor"`
	Project     string `json:"project" toml:"project" yaml:"project"`
	Description string `json:"description" toml:"description" yaml:"description"`
}

// FullName returns "vendor/project"
func (x Metadata) FullName() string {
	return fmt.Sprintf("%s/%s", x.Vendor, x.Project)
}

// ProjectConfiguration is the user's selection of metadata and options
type ProjectConfiguration struct {
	Metadata Metadata    `json:"metadata" toml:"metadata" yaml:"metadata"`
	Database Database    `json:"database" toml:"database" yaml:"database"`
	Queue    QueueDriver `json:"queue" toml:"queue" yaml:"queue"`
	Features []Feature   `json:"features" toml:"features" yaml:"features"`
}

// Has reports whether the feature is selected
func (x *ProjectConfiguration) Has(feature Feature) bool {
	return slices.Contains(x.Features, feature)
}

// Validate checks that the configuration only refers to known options
func (x *ProjectConfiguration) Validate() error {
	if x.Metadata.Vendor == "" {
		return goerr.New("metadata.vendor is required", goerr.T(types.ErrTagInvalidArgument))
	}
	if x.Metadata.Project == "" {
		return goerr.New("metadata.project is required", goerr.T(types.ErrTagInvalidArgument))
	}

	if x.Database != DatabaseNone && !slices.Contains(Databases, x.Database) {
		return goerr.New("unsupported database",
			goerr.V("database", x.Database),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	if x.Queue != QueueSync && !slices.Contains(QueueDrivers, x.Queue) {
		return goerr.New("unsupported queue driver",
			goerr.V("queue", x.Queue),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	for _, f := range x.Features {
		if !slices.Contains(Features, f) {
			return goerr.New("unsupported feature",
				goerr.V("feature", f),
				goerr.T(types.ErrTagInvalidArgument),
			)
		}
	}

	if x.Has(FeatureHorizon) && x.Queue != QueueRedis {
		return goerr.New("horizon requires the redis queue driver",
			goerr.V("queue", x.Queue),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	return nil
}
