// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package obdd

import (
	"strconv"
	"strings"
)

// Parse and Encode implement the external textual format: a sequence of
// node records separated by "|", each record three comma-separated
// integers. Every record but the first is a literal (variable, low, high)
// triple. The first record is special: its "variable" field carries the
// diagram's variable count rather than a real variable id (its low/high
// fields are unused and always written as 0), because node 0 is always the
// false terminal and has no variable of its own to report, leaving its
// variable slot free to carry the variable count instead.
//
// Nodes are written and read in their stored array order; the root is
// always the last record, matching the order a diagram is built in rather
// than a hash-consed, potentially out-of-order one (see BDD.RootNode).

// Encode renders b in the external textual format.
func Encode(b *BDD) string {
	records := make([]string, len(b.nodes))
	records[0] = strconv.Itoa(b.variableCount) + ",0,0"
	for i := 1; i < len(b.nodes); i++ {
		n := b.nodes[i].exported()
		records[i] = strconv.Itoa(int(n.Variable)) + "," +
			strconv.FormatUint(uint64(n.Low), 10) + "," +
			strconv.FormatUint(uint64(n.High), 10)
	}
	return strings.Join(records, "|")
}

// Parse reads the external textual format produced by Encode and returns the
// BDD it describes. It reports a *ParseError for any malformed record. Empty
// records produced by adjacent or trailing "|" delimiters are ignored; line
// numbers in the resulting *ParseError count only the records that survive
// that filtering.
func Parse(data string) (*BDD, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return nil, &ParseError{Line: 1, Text: data, Err: errNoRecords}
	}

	var records []string
	for _, r := range strings.Split(data, "|") {
		if strings.TrimSpace(r) == "" {
			continue
		}
		records = append(records, r)
	}
	if len(records) == 0 {
		return nil, &ParseError{Line: 1, Text: data, Err: errNoRecords}
	}

	nodes := make([]packedNode, len(records))
	variableCount, _, _, err := parseRecord(records[0])
	if err != nil {
		return nil, &ParseError{Line: 1, Text: records[0], Err: err}
	}
	// Node 0 is always the false terminal: whatever the on-disk record
	// stored in its fields (typically the variable count, see Encode) is
	// read above and then discarded here.
	nodes[0] = zeroNode

	for i := 1; i < len(records); i++ {
		variable, low, high, err := parseRecord(records[i])
		if err != nil {
			return nil, &ParseError{Line: i + 1, Text: records[i], Err: err}
		}
		if i == 1 {
			// Node 1 is always the true terminal when present; the on-disk
			// fields are parsed (to validate the record) and then ignored.
			nodes[1] = oneNode
			continue
		}
		if variable > int(^uint16(0)) {
			return nil, &ParseError{Line: i + 1, Text: records[i], Err: errVariableBit}
		}
		nodes[i] = packNode(VariableID(variable), NodeID(low), NodeID(high))
	}

	return &BDD{
		variableCount: variableCount,
		nodes:         nodes,
	}, nil
}

func parseRecord(record string) (a, b, c int, err error) {
	fields := strings.Split(record, ",")
	if len(fields) != 3 {
		return 0, 0, 0, errFieldCount
	}
	ints := make([]int, 3)
	for i, f := range fields {
		v, convErr := strconv.ParseUint(strings.TrimSpace(f), 10, 64)
		if convErr != nil {
			return 0, 0, 0, convErr
		}
		ints[i] = int(v)
	}
	return ints[0], ints[1], ints[2], nil
}
