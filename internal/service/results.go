// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sublime-security/sublime-cli/internal/adapter"
	"github.com/sublime-security/sublime-cli/models"
)

const (
	keySuccess = "success"
	keyFail    = "fail"
)

// listOf returns the list under key, falling back to a bare list response
// wrapped by the adapter under "data".
func listOf(doc models.Document, key string) []models.Document {
	if doc == nil {
		return nil
	}
	if list := doc.Documents(key); list != nil {
		return list
	}
	return doc.Documents("data")
}

// outcome collects per-item results of a bulk operation.
type outcome struct {
	success []models.Document
	fail    []models.Document
}

func (o *outcome) add(name string, doc models.Document, err error) {
	if err != nil {
		o.fail = append(o.fail, failure(name, err))
		return
	}
	if doc == nil {
		doc = models.Document{}
	}
	o.success = append(o.success, doc)
}

// document orders successes by sortKey and returns {success, fail}.
func (o *outcome) document(sortKey string) models.Document {
	success := o.success
	if success == nil {
		success = []models.Document{}
	}
	fail := o.fail
	if fail == nil {
		fail = []models.Document{}
	}
	models.SortDocumentsBy(success, sortKey)
	return models.Document{keySuccess: success, keyFail: fail}
}

// failure describes a failed item. API errors keep their status code.
func failure(name string, err error) models.Document {
	doc := models.Document{"name": name, "error": err.Error()}
	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode != 0 {
		doc["status_code"] = apiErr.StatusCode
	}
	return doc
}

// confirm asks confirmer and maps a refusal to ErrPermissionDenied.
func confirm(ctx context.Context, confirmer Confirmer, prompt string) error {
	ok, err := confirmer.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("error reading confirmation: %w", err)
	}
	if !ok {
		return ErrPermissionDenied
	}
	return nil
}

// wrapList turns list responses into a single document. Empty responses
// become empty objects.
func wrapList(key string, docs ...models.Document) models.Document {
	list := make([]models.Document, 0, len(docs))
	for _, doc := range docs {
		if doc == nil {
			doc = models.Document{}
		}
		list = append(list, doc)
	}
	return models.Document{key: list}
}
