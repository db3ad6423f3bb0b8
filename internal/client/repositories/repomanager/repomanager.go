// Package repomanager vends SQLite-backed repositories bound to either the
// database handle or an open transaction.
package repomanager

import (
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/accounts"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/attachments"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/donations"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/biteshare/internal/client/repositories/requests"
	"github.com/dmitrijs2005/biteshare/internal/dbx"
)

type RepositoryManager interface {
	Metadata(db dbx.DBTX) metadata.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	Requests(db dbx.DBTX) requests.Repository
	Donations(db dbx.DBTX) donations.Repository
	Attachments(db dbx.DBTX) attachments.Repository
}

type SQLiteRepositoryManager struct{}

func NewSQLiteRepositoryManager() *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{}
}

func (m *SQLiteRepositoryManager) Metadata(db dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Requests(db dbx.DBTX) requests.Repository {
	return requests.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Donations(db dbx.DBTX) donations.Repository {
	return donations.NewSQLiteRepository(db)
}

func (m *SQLiteRepositoryManager) Attachments(db dbx.DBTX) attachments.Repository {
	return attachments.NewSQLiteRepository(db)
}
