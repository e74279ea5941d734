// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthTokenRevoked       = "auth.token_revoked"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthAccountSuspended   = "auth.account_suspended"
	KeyAuthAlreadyLoggedIn    = "auth.already_logged_in"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"

	// Admin
	KeyAdminAccessDenied = "admin.access_denied"

	// Users
	KeyUser = "user"

	// Sidebar (facet configuration)
	KeySidebarCategoryRequired = "sidebar.category_id_required"
	KeySidebarSaved            = "sidebar.saved"
	KeySidebarDeleted          = "sidebar.deleted"
	KeySidebar                 = "sidebar"
	KeySidebarConfig           = "sidebar_config"

	// Categories
	KeyCategory        = "category"
	KeyCategoryCreated = "category.created"
	KeyCategoryUpdated = "category.updated"
	KeyCategoryDeleted = "category.deleted"
	KeyCategoryExists  = "category.exists"
	KeyCategoryInvalid = "category.invalid"

	// Products
	KeyProduct               = "product"
	KeyProductCreated        = "product.created"
	KeyProductUpdated        = "product.updated"
	KeyProductDeleted        = "product.deleted"
	KeyProductVendorRequired = "product.vendor_required"
	KeyProductOutletRequired = "product.outlet_required"
	KeyProductInvalidVendor  = "product.invalid_vendor"
	KeyProductInvalidOutlet  = "product.invalid_outlet"

	// Reviews
	KeyReviewCreated         = "review.created"
	KeyReviewProductRequired = "review.product_required"

	// Vendors and outlets
	KeyVendor        = "vendor"
	KeyVendorCreated = "vendor.created"
	KeyVendorExists  = "vendor.exists"
	KeyOutletCreated = "outlet.created"

	// Enquiries
	KeyEnquiry              = "enquiry"
	KeyEnquirySubmitted     = "enquiry.submitted"
	KeyEnquiryReplied       = "enquiry.replied"
	KeyEnquiryMissingFields = "enquiry.missing_fields"

	// Blogs
	KeyBlog        = "blog"
	KeyBlogCreated = "blog.created"
	KeyBlogDeleted = "blog.deleted"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// Rate limiting
	KeyRateLimitExceeded = "rate_limit.exceeded"
)
