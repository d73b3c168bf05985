package testutil

// Fixed identifiers for deterministic testing
var (
	TestConversationID1 = "conv-00000000-0000-0000-0000-000000000001"
	TestConversationID2 = "conv-00000000-0000-0000-0000-000000000002"
	TestPAN             = "ABCDE1234F"
	TestPhone           = "9876543210"
)
