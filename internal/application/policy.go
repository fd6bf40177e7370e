package application

import (
	"fmt"

	"github.com/bnema/moodline/internal/domain"
)

// Policy bundles the decision tables the pipeline consults after classification.
type Policy struct {
	Risk      domain.RiskPolicy
	Responses domain.ResponseTable
	Resources domain.ResourceTable
}

func DefaultPolicy() Policy {
	return Policy{
		Risk:      domain.DefaultRiskPolicy(),
		Responses: domain.DefaultResponseTable(),
		Resources: domain.DefaultResourceTable(),
	}
}

func (p Policy) Validate() error {
	if err := p.Risk.Validate(); err != nil {
		return fmt.Errorf("risk policy: %w", err)
	}
	if p.Responses.IsZero() {
		return fmt.Errorf("%w: response table is empty", domain.ErrInvalidCatalog)
	}
	if p.Resources.IsZero() {
		return fmt.Errorf("%w: resource table is empty", domain.ErrInvalidCatalog)
	}

	return nil
}
