// Package repository implements the domain repository interfaces on top of
// the collection data store client.
package repository

import (
	"errors"

	"github.com/motinhapro/CinemaWeb/internal/domain"
	"github.com/motinhapro/CinemaWeb/internal/store"
)

const dateLayout = "2006-01-02"

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return domain.ErrRecordNotFound
	}

	return err
}
