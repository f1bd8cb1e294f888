package mappers

import (
	"fmt"
	"time"

	"github.com/tansyhq/tansy/internal/domain/hosting"
	"github.com/tansyhq/tansy/internal/shared/mapper"
)

// HostingSnapshotRow is the joined hosting_records x clients row the
// repository selects; one row becomes one notifiable snapshot.
type HostingSnapshotRow struct {
	ID               uint
	DomainName       string
	PlanName         string
	Status           string
	ClientID         uint
	ClientName       string
	ClientCompany    string
	ClientEmail      string
	ClientTechEmail  string
	DomainOwnerEmail string
	DomainTechEmail  string
	ExpiresAt        time.Time
	CreatedAt        time.Time
}

type HostingRecordMapper interface {
	ToEntity(row *HostingSnapshotRow) (*hosting.Record, error)
	ToEntities(rows []*HostingSnapshotRow) ([]*hosting.Record, error)
}

type HostingRecordMapperImpl struct{}

func NewHostingRecordMapper() HostingRecordMapper {
	return &HostingRecordMapperImpl{}
}

func (m *HostingRecordMapperImpl) ToEntity(row *HostingSnapshotRow) (*hosting.Record, error) {
	if row == nil {
		return nil, nil
	}

	status, err := hosting.NewStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create hosting status: %w", err)
	}

	entity, err := hosting.ReconstructRecord(
		row.ID,
		row.DomainName,
		row.PlanName,
		status,
		row.ClientID,
		row.ClientName,
		row.ClientCompany,
		hosting.Contacts{
			ClientEmail:      row.ClientEmail,
			ClientTechEmail:  row.ClientTechEmail,
			DomainOwnerEmail: row.DomainOwnerEmail,
			DomainTechEmail:  row.DomainTechEmail,
		},
		row.ExpiresAt,
		row.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct hosting record entity: %w", err)
	}

	return entity, nil
}

func (m *HostingRecordMapperImpl) ToEntities(rows []*HostingSnapshotRow) ([]*hosting.Record, error) {
	return mapper.MapSlicePtrWithID(rows, m.ToEntity, func(r *HostingSnapshotRow) uint {
		return r.ID
	})
}
