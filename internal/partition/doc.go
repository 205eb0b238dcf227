// Package partition routes decoded feed records to CSV sinks.
//
// A Partitioner owns one run over one feed file. Each record is assigned
// a partition key under the configured policy, and each distinct key gets
// its own lazily created sink that stays open until Close:
//
//   - symbol: one sink per distinct symbol, named {symbol}-{kind}.csv
//   - chunk: a new sink every N records, named {kind}-{cumulative}.csv
//   - date: one sink per calendar date taken from the decoded timestamp
//     or from the leading digits of the record number, named
//     {date}-{kind}.csv
//
// Close flushes and closes every sink from the run, including the final
// partial chunk under the chunk policy.
package partition
