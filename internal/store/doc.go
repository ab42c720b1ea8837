// Package store defines the persistence ports of the application: interfaces
// for user, workspace, and word-entry storage, the shared sentinel errors,
// and the DBTX/transaction helpers implementations build on. Concrete
// PostgreSQL implementations live in internal/platform/postgres.
package store
