package formvalidation

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// customMessages holds the caller messages that survived parsing.
type customMessages struct {
	field map[string]string
	rule  map[string]map[string]string // field -> canonical rule -> message
}

// parseMessages keeps "field" keys whose field is in data and "field.rule"
// keys whose field is in data and whose rule is in the catalog. Everything
// else is dropped.
func parseMessages(msgs Messages, data FieldMap, catalog Catalog, logger *zap.Logger) customMessages {
	cm := customMessages{
		field: map[string]string{},
		rule:  map[string]map[string]string{},
	}

	keys := make([]string, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field, rule, perRule := strings.Cut(key, ".")
		if _, ok := data[field]; !ok {
			logger.Debug("dropping message for unknown field", zap.String("key", key))
			continue
		}
		if !perRule {
			cm.field[field] = msgs[key]
			continue
		}
		if _, ok := catalog.Lookup(rule); !ok || rule == "" {
			logger.Debug("dropping message for unknown rule", zap.String("key", key))
			continue
		}
		if cm.rule[field] == nil {
			cm.rule[field] = map[string]string{}
		}
		cm.rule[field][canonicalName(rule)] = msgs[key]
	}
	return cm
}

// lookup returns the message for a failed rule. perRule is true when the
// message came from a "field.rule" key.
func (cm customMessages) lookup(field, rule string) (msg string, perRule, ok bool) {
	if msg, ok := cm.rule[field][canonicalName(rule)]; ok {
		return msg, true, true
	}
	if msg, ok := cm.field[field]; ok {
		return msg, false, true
	}
	return "", false, false
}
