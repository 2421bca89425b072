package consensus

// Wire constants of the Zephyr confidential transfer shape this package
// accepts. Any other value is a structural mismatch.
const (
	TX_VERSION_CONVERSION = 3

	TXIN_KIND_ASSET_TO_KEY      = 0x02
	TXOUT_KIND_ASSET_TAGGED_KEY = 0x02
	RCT_TYPE_BULLETPROOF_PLUS   = 0x06
	BP_PLUS_COUNT               = 0x01
	RING_SIZE                   = 16
	ECDH_AMOUNT_BYTES           = 8
	POINT_BYTES                 = 32
	SCALAR_BYTES                = 32
	SUPPORTED_ASSET_TYPE        = "ZEPH"
	CONVERSION_AMOUNT_NONE      = 0
)

// Sanity caps applied before any allocation sized by a wire count.
const (
	MAX_TX_INPUTS      = 1024
	MAX_TX_OUTPUTS     = 16
	MAX_ASSET_TYPE_LEN = 16
	MAX_TX_EXTRA_BYTES = 1 << 16
	MAX_BP_PLUS_ROUNDS = 10
)
