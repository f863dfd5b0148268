// Package vanity mines keypairs whose npub starts with a chosen prefix.
//
// Mining is brute force: workers generate random keypairs and test the
// bech32 rendering until one matches. Expected work grows by a factor of
// 32 per prefix character, so anything beyond a handful of characters
// takes a long time.
package vanity
