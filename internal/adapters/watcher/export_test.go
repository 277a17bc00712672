package watcher

// ConvertOp exports convertOp for testing.
var ConvertOp = convertOp
