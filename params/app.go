package params

// DedupeCacheSize bounds the LRU used to drop repeated samples.
// A one-hour 60Hz recording is ~216k samples.
var DedupeCacheSize = 250_000
