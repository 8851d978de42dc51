package repository

import "demo_services/internal/storage"

type Repositories struct {
	Visit VisitRepository
}

// NewRepositories 綁定到單一連線；計數服務每個請求各自建立一組
func NewRepositories(db *storage.Database) *Repositories {
	return &Repositories{
		Visit: NewVisitRepository(db),
	}
}
