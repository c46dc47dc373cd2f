package catalog

// records is the contract template table, grouped by category.
var records = []Record{
	// NFT
	{
		ID:          "nft-marketplace",
		Name:        "NFT Marketplace",
		Description: "Full-featured marketplace with fixed-price listings and English auctions. Includes platform fees, seller/buyer stats, and expiring listings.",
		Category:    CategoryNFT,
		Features:    []string{"Fixed Price Sales", "English Auctions", "Reserve Prices", "2.5% Platform Fee", "Seller/Buyer Stats"},
		FileName:    "nft-marketplace.clar",
	},
	{
		ID:          "nft-collection",
		Name:        "NFT Collection",
		Description: "SIP-009 compliant NFT collection with minting, burning, royalties, and metadata support. Perfect for launching your own NFT project.",
		Category:    CategoryNFT,
		Features:    []string{"SIP-009 Compliant", "Batch Minting", "Royalty Support", "Metadata URIs", "Approval System"},
		FileName:    "nft-collection.clar",
	},
	{
		ID:          "nft-staking",
		Name:        "NFT Staking",
		Description: "Stake NFTs to earn rewards over time. Features tiered bonuses for longer lock periods and whitelisted NFT collections.",
		Category:    CategoryNFT,
		Features:    []string{"Stake to Earn", "Lock Period Bonuses", "Whitelist System", "Reward Pool", "Auto-compound"},
		FileName:    "nft-staking.clar",
	},
	{
		ID:          "nft-rental",
		Name:        "NFT Rental",
		Description: "Rent NFTs for a specified duration with collateral protection. Great for gaming NFTs and utility tokens.",
		Category:    CategoryNFT,
		Features:    []string{"Time-based Rental", "Collateral System", "Auto-expiry", "Rental Stats", "Flexible Pricing"},
		FileName:    "nft-rental.clar",
	},
	{
		ID:          "nft-fractional",
		Name:        "NFT Fractional",
		Description: "Fractionalize expensive NFTs into fungible tokens. Enables shared ownership and buyout mechanisms.",
		Category:    CategoryNFT,
		Features:    []string{"Fractionalization", "Buyout Mechanism", "Share Trading", "Ownership %", "Redemption"},
		FileName:    "nft-fractional.clar",
	},

	// Token
	{
		ID:          "fungible-token",
		Name:        "Fungible Token",
		Description: "SIP-010 compliant fungible token with minting, burning, and transfer controls. Foundation for any token project.",
		Category:    CategoryToken,
		Features:    []string{"SIP-010 Compliant", "Mint/Burn", "Transfer Controls", "Authorized Minters", "Max Supply"},
		FileName:    "fungible-token.clar",
	},
	{
		ID:          "token-vesting",
		Name:        "Token Vesting",
		Description: "Linear and cliff vesting schedules for team tokens, advisors, and investors. Revocable schedules available.",
		Category:    CategoryToken,
		Features:    []string{"Cliff Vesting", "Linear Release", "Revocable", "Multi-beneficiary", "Progress Tracking"},
		FileName:    "token-vesting.clar",
	},
	{
		ID:          "token-airdrop",
		Name:        "Token Airdrop",
		Description: "Distribute tokens to multiple recipients with whitelist support. Perfect for community rewards and marketing.",
		Category:    CategoryToken,
		Features:    []string{"Batch Distribution", "Whitelist Support", "Expiring Claims", "Campaign Stats", "Unclaimed Recovery"},
		FileName:    "token-airdrop.clar",
	},
	{
		ID:          "token-swap",
		Name:        "Token Swap",
		Description: "Atomic swaps between different tokens. Create swap orders with optional counterparty restrictions.",
		Category:    CategoryToken,
		Features:    []string{"Atomic Swaps", "Order Book", "Expiring Orders", "Counterparty Lock", "0.3% Fee"},
		FileName:    "token-swap.clar",
	},
	{
		ID:          "token-bridge",
		Name:        "Token Bridge",
		Description: "Bridge tokens between Stacks and other chains with oracle verification. Multi-chain support.",
		Category:    CategoryToken,
		Features:    []string{"Cross-chain", "Oracle Verification", "Multi-chain", "Liquidity Pool", "Bridge Stats"},
		FileName:    "token-bridge.clar",
	},

	// DeFi
	{
		ID:          "lending-protocol",
		Name:        "Lending Protocol",
		Description: "Deposit collateral and borrow against it. Features liquidation, health factors, and dynamic interest rates.",
		Category:    CategoryDeFi,
		Features:    []string{"Collateralized Loans", "Liquidation", "Dynamic Rates", "Health Factor", "75% Max LTV"},
		FileName:    "lending-protocol.clar",
	},
	{
		ID:          "liquidity-pool",
		Name:        "Liquidity Pool (AMM)",
		Description: "Automated Market Maker with constant product formula. Provide liquidity and earn trading fees.",
		Category:    CategoryDeFi,
		Features:    []string{"AMM Trading", "LP Tokens", "Price Discovery", "0.3% Swap Fee", "Slippage Protection"},
		FileName:    "liquidity-pool.clar",
	},
	{
		ID:          "yield-farming",
		Name:        "Yield Farming",
		Description: "Stake LP tokens to earn reward tokens. Create multiple farms with different reward rates.",
		Category:    CategoryDeFi,
		Features:    []string{"Farm Creation", "LP Staking", "Reward Distribution", "APR Calculation", "Compound"},
		FileName:    "yield-farming.clar",
	},
	{
		ID:          "staking-pool",
		Name:        "Staking Pool",
		Description: "Stake tokens with flexible or locked options. Higher APY for longer lock periods.",
		Category:    CategoryDeFi,
		Features:    []string{"Flexible/Locked", "Tiered APY", "Early Unstake Fee", "Cooldown Period", "Reward Pool"},
		FileName:    "staking-pool.clar",
	},
	{
		ID:          "flash-loan",
		Name:        "Flash Loan",
		Description: "Uncollateralized loans that must be repaid within the same transaction. 0.09% fee.",
		Category:    CategoryDeFi,
		Features:    []string{"Instant Loans", "No Collateral", "Same-tx Repay", "0.09% Fee", "Callback System"},
		FileName:    "flash-loan.clar",
	},

	// DAO
	{
		ID:          "dao-governance",
		Name:        "DAO Governance",
		Description: "Decentralized governance with proposal creation, voting, and execution. Delegation support.",
		Category:    CategoryDAO,
		Features:    []string{"Proposals", "Voting", "Delegation", "Quorum", "Execution Delay"},
		FileName:    "dao-governance.clar",
	},
	{
		ID:          "dao-treasury",
		Name:        "DAO Treasury",
		Description: "Manage DAO funds with multi-sig spending requests. Budget allocations and spending limits.",
		Category:    CategoryDAO,
		Features:    []string{"Multi-sig", "Budget Allocation", "Spending Limits", "Quick Spend", "Transaction History"},
		FileName:    "dao-treasury.clar",
	},
	{
		ID:          "dao-voting",
		Name:        "DAO Voting",
		Description: "Flexible voting mechanisms including single choice, multiple choice, ranked, and quadratic voting.",
		Category:    CategoryDAO,
		Features:    []string{"Multiple Vote Types", "Quadratic Voting", "Poll Creation", "Vote Weights", "Results Finalization"},
		FileName:    "dao-voting.clar",
	},
	{
		ID:          "dao-membership",
		Name:        "DAO Membership",
		Description: "Tiered membership system with monthly fees, voting weights, and referral rewards.",
		Category:    CategoryDAO,
		Features:    []string{"Membership Tiers", "Monthly Fees", "Referral System", "Voting Weights", "Benefits"},
		FileName:    "dao-membership.clar",
	},
	{
		ID:          "dao-proposals",
		Name:        "DAO Proposals",
		Description: "Advanced proposal management with templates for funding, parameters, and emergency actions.",
		Category:    CategoryDAO,
		Features:    []string{"Proposal Templates", "Funding Requests", "Parameter Changes", "Discussions", "Execution"},
		FileName:    "dao-proposals.clar",
	},

	// Utility
	{
		ID:          "escrow-service",
		Name:        "Escrow Service",
		Description: "Secure escrow for peer-to-peer transactions with dispute resolution and arbiter support.",
		Category:    CategoryUtility,
		Features:    []string{"P2P Escrow", "Dispute Resolution", "Arbiter System", "Milestones", "Reputation"},
		FileName:    "escrow-service.clar",
	},
	{
		ID:          "subscription-service",
		Name:        "Subscription Service",
		Description: "Recurring payments and subscription management. Create plans with different billing periods.",
		Category:    CategoryUtility,
		Features:    []string{"Recurring Payments", "Multiple Plans", "Auto-renew", "Creator Revenue", "Subscriber Stats"},
		FileName:    "subscription-service.clar",
	},
	{
		ID:          "crowdfunding",
		Name:        "Crowdfunding",
		Description: "Create and manage crowdfunding campaigns with reward tiers and flexible funding options.",
		Category:    CategoryUtility,
		Features:    []string{"Campaign Creation", "Reward Tiers", "Flexible Funding", "Refunds", "Progress Tracking"},
		FileName:    "crowdfunding.clar",
	},
	{
		ID:          "lottery",
		Name:        "Lottery",
		Description: "Decentralized lottery with provably fair drawings. Create lotteries with custom ticket prices.",
		Category:    CategoryUtility,
		Features:    []string{"Fair Drawing", "Custom Prizes", "Ticket Sales", "Winner Selection", "Prize Claim"},
		FileName:    "lottery.clar",
	},
	{
		ID:          "multisig-wallet",
		Name:        "Multi-Sig Wallet",
		Description: "Secure wallet requiring multiple signatures for transactions. Add/remove signers, change threshold.",
		Category:    CategoryUtility,
		Features:    []string{"Multi-signature", "Threshold Config", "Signer Management", "Transaction Queue", "Expiring Txs"},
		FileName:    "multisig-wallet.clar",
	},
}
