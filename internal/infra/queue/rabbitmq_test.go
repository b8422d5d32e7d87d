package mq

import (
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

func TestTableCarrier(t *testing.T) {
	c := tableCarrier{table: amqp.Table{"n": 42}}

	c.Set("traceparent", "00-abc-def-01")
	assert.Equal(t, "00-abc-def-01", c.Get("traceparent"))
	assert.Equal(t, "42", c.Get("n"))
	assert.Equal(t, "", c.Get("missing"))
	assert.ElementsMatch(t, []string{"n", "traceparent"}, c.Keys())
}
