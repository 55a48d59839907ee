package services

import (
	portsevents "github.com/SscSPs/debit_card_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/debit_card_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debit_card_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// publisher may be nil when no event bus is configured.
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher portsevents.EventPublisher) *portssvc.ServiceContainer {
	var options []ServiceOption
	if publisher != nil {
		options = append(options, WithEventPublisher(publisher))
	}
	return &portssvc.ServiceContainer{
		DebitCard: NewDebitCardService(repos.DebitCardRepo, options...),
	}
}
