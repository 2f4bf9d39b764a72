package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics()

	require.NotNil(t, HTTPRequestsTotal)
	require.NotNil(t, HTTPRequestDuration)
	require.NotNil(t, HTTPRequestsInProgress)
	require.NotNil(t, BooksStored)
}

func TestRecordBookOp(t *testing.T) {
	InitMetrics()
	created := testutil.ToFloat64(BooksCreatedTotal)
	deleted := testutil.ToFloat64(BooksDeletedTotal)

	RecordBookOp(BookCreated, 3)
	RecordBookOp(BookCreated, 4)
	RecordBookOp(BookDeleted, 3)

	assert.Equal(t, created+2, testutil.ToFloat64(BooksCreatedTotal))
	assert.Equal(t, deleted+1, testutil.ToFloat64(BooksDeletedTotal))
	assert.Equal(t, float64(3), testutil.ToFloat64(BooksStored))

	RecordBookOp(BookUpdated, -1)
	assert.Equal(t, float64(3), testutil.ToFloat64(BooksStored))
}

func TestRecordHTTPRequest(t *testing.T) {
	InitMetrics()
	c := HTTPRequestsTotal.WithLabelValues("GET", "/books/:id", "404")
	before := testutil.ToFloat64(c)

	RecordHTTPRequest("GET", "/books/:id", "404", 0.002)
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}

func TestTrackInProgress(t *testing.T) {
	InitMetrics()
	before := testutil.ToFloat64(HTTPRequestsInProgress)

	done := TrackInProgress()
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsInProgress))
	done()
	assert.Equal(t, before, testutil.ToFloat64(HTTPRequestsInProgress))
}

func TestRecordPublishAndBreaker(t *testing.T) {
	InitMetrics()

	RecordPublish("bookshelf.events", "book.created", nil)
	RecordPublish("bookshelf.events", "book.created", errors.New("broker down"))
	assert.GreaterOrEqual(t, testutil.ToFloat64(MessagesPublishedTotal.WithLabelValues("bookshelf.events", "book.created", "failure")), float64(1))

	RecordBreakerState("events", 1)
	assert.Equal(t, float64(1), testutil.ToFloat64(CircuitBreakerState.WithLabelValues("events")))

	RecordBreakerRequest("events", "rejected")
	assert.GreaterOrEqual(t, testutil.ToFloat64(CircuitBreakerRequests.WithLabelValues("events", "rejected")), float64(1))
}
