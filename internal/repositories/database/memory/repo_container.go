package memory

import (
	portsrepo "github.com/SscSPs/debit_card_app/internal/core/ports/repositories"
)

func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		DebitCardRepo: NewDebitCardRepository(),
	}
}
