package constants

const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Cannot create record"
	ERROR_EDIT                 = "Cannot edit record"
	ERROR_DELETE               = "Cannot delete record"
	ERROR_PARSE_DATA_TO_LOCALS = "Cannot read validated input"
	NOT_STAFF                  = "Staff permission required"
	MISSING_LOGIN_INPUT        = "Username and password are required"
	INVALID_CREDENTIALS        = "Invalid username or password"
	ACCOUNT_NOT_ACTIVE         = "Account is deactivated"
	CAN_NOT_HASH_PASSWORD      = "Cannot hash password"

	EVENT_NOT_FOUND    = "Event not found"
	LOCATION_NOT_FOUND = "Event location not found"
	CATEGORY_NOT_FOUND = "Event category not found"
	PRICE_NOT_FOUND    = "Event price not found"
	TAG_NOT_FOUND      = "Tag not found"
	AUTHOR_NOT_FOUND   = "Author not found"
	SEASON_NOT_FOUND   = "Season not found"
	INVALID_DATE_PART  = "Invalid date component"
	NO_EVENTS_TO_INDEX = "No events available to build the calendar index"

	END_BEFORE_START  = "End must not be before start"
	INVALID_PARENT    = "An event cannot be its own parent or the child of another child"
	LAT_LON_PAIR      = "Latitude and longitude must be set together"
	GEOCODE_FAILED    = "The mappable location could not be geocoded. Try different address text, or supply coordinates directly."
	BROCHURE_UPLOAD   = "Cannot upload brochure"
	SLUG_ALREADY_USED = "Slug already in use"
)
