package domain

// AssetStatus is the lifecycle state of a credential asset.
// iCloud profiles and proxies use active/archived; social accounts also use draft.
type AssetStatus string

const (
	AssetStatusDraft    AssetStatus = "draft"
	AssetStatusActive   AssetStatus = "active"
	AssetStatusArchived AssetStatus = "archived"
)

func (s AssetStatus) String() string { return string(s) }

// IsLive reports whether the asset is still in use on its device.
func (s AssetStatus) IsLive() bool {
	return s == AssetStatusActive || s == AssetStatusDraft
}

// AssetKind identifies a credential asset table.
type AssetKind string

const (
	AssetKindICloudProfile AssetKind = "icloud_profile"
	AssetKindSocialAccount AssetKind = "social_account"
	AssetKindProxy         AssetKind = "proxy"
)

func (k AssetKind) String() string { return string(k) }

// SocialPlatform is the network a social account belongs to.
type SocialPlatform string

const (
	SocialPlatformInstagram SocialPlatform = "instagram"
	SocialPlatformTikTok    SocialPlatform = "tiktok"
	SocialPlatformSnapchat  SocialPlatform = "snapchat"
	SocialPlatformTwitter   SocialPlatform = "twitter"
	SocialPlatformFacebook  SocialPlatform = "facebook"
)

func (p SocialPlatform) String() string { return string(p) }

func (p SocialPlatform) IsValid() bool {
	switch p {
	case SocialPlatformInstagram, SocialPlatformTikTok, SocialPlatformSnapchat,
		SocialPlatformTwitter, SocialPlatformFacebook:
		return true
	}
	return false
}

// ProxyProtocol is the scheme a proxy speaks.
type ProxyProtocol string

const (
	ProxyProtocolHTTP   ProxyProtocol = "http"
	ProxyProtocolHTTPS  ProxyProtocol = "https"
	ProxyProtocolSOCKS5 ProxyProtocol = "socks5"
)

func (p ProxyProtocol) String() string { return string(p) }

func (p ProxyProtocol) IsValid() bool {
	switch p {
	case ProxyProtocolHTTP, ProxyProtocolHTTPS, ProxyProtocolSOCKS5:
		return true
	}
	return false
}
