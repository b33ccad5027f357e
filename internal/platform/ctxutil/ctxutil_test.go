// Copyright (c) 2026 Melodia. All rights reserved.
// Author: trong.vandt@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vantrong/melodia/internal/platform/ctxutil"
	"github.com/vantrong/melodia/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// 1. Initially should return the default logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Actor verifies that the acting principal can be stored in context,
and that an empty context means anonymous.
*/
func TestContext_Actor(t *testing.T) {
	ctx := context.Background()

	// 1. Anonymous by default
	assert.Nil(t, ctxutil.GetActor(ctx))

	// 2. Inject and retrieve
	actor := &sec.Actor{ID: "actor-1", Role: sec.RoleEditor}
	ctx = ctxutil.WithActor(ctx, actor)

	got := ctxutil.GetActor(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "actor-1", got.ID)
	assert.Equal(t, sec.RoleEditor, got.Role)
}
