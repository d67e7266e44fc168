package constants

// User-facing messages (Indonesian, matching the SAIZU campus frontend).
const (
	BOOKING_CONFLICT = "Maaf, waktu yang dipilih bertabrakan dengan peminjaman lain."
	BOOKING_CREATED  = "Peminjaman berhasil diajukan dan sedang menunggu persetujuan admin."
	BOOKING_CANCELED = "Peminjaman berhasil dibatalkan."

	INVALID_EMAIL       = "Gunakan email kampus @uinsaizu.ac.id untuk masuk."
	MISSING_LOGIN_INPUT = "Email wajib diisi."

	ROOM_NOT_FOUND    = "Ruangan tidak ditemukan."
	BOOKING_NOT_FOUND = "Peminjaman tidak ditemukan."

	INVALID_TIME_RANGE   = "Waktu selesai harus setelah waktu mulai."
	OUTSIDE_ROOM_WINDOW  = "Waktu peminjaman di luar jam operasional ruangan."
	ILLEGAL_TRANSITION   = "Perubahan status peminjaman tidak diizinkan."
	NOT_BOOKING_OWNER    = "Anda hanya dapat membatalkan peminjaman milik sendiri."
	INVALID_DATE_FORMAT  = "Format tanggal harus YYYY-MM-DD."
	INVALID_TIME_FORMAT  = "Format waktu harus HH:MM."
	INVALID_STATUS_VALUE = "Status tidak dikenal."

	NOT_ADMIN            = "Anda tidak memiliki hak akses admin."
	PAGE_FORBIDDEN       = "Anda tidak memiliki akses ke halaman ini."
	ERROR_INTERNAL_ERROR = "Terjadi kesalahan pada server."
)
