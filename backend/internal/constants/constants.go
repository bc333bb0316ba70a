package constants

// Dataset constants
const (
	// DescriptionPlaceholder fills records whose description is missing
	DescriptionPlaceholder = "No description."

	// ListDelimiter separates items inside multi-valued columns
	ListDelimiter = ";"

	// NoLocationsText is shown for characters without locations
	NoLocationsText = "No locations available."
)

// Similarity constants
const (
	// RelatedLimit is the maximum number of related characters returned
	RelatedLimit = 5

	WeightSharedGame     = 2.0
	WeightSharedFriend   = 1.0
	WeightSharedEnemy    = 0.5
	WeightSharedLocation = 0.2

	// Added when the candidate lists the query character as a friend / as an enemy
	BonusListedAsFriend = 1.0
	BonusListedAsEnemy  = 1.0
)
