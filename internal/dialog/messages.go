package dialog

// Operators type keyboard labels back verbatim, so every label below is part
// of the bot's contract and must not be reworded casually.
const (
	labelRoleAdmin = "Kakitangan Admin"
	labelRoleStaff = "Kakitangan Biasa"

	labelYes = "YA"
	labelNo  = "TIDAK"

	labelMenuUpdate = "Kemaskini Jadual"
	labelMenuDelete = "Padam Jadual"
	labelMenuDone   = "Selesai"

	labelCheckOther  = "Semak Pegawai Lain"
	labelChangeDate  = "Ubah Tarikh Semakan"
	labelCheckFinish = "Semakan Tamat"
)

const (
	msgChooseRole = "Sila pilih jenis kakitangan:\n1. Kakitangan Admin\n2. Kakitangan Biasa"
	msgRoleRetry  = "Pilihan tidak dikenali. Sila pilih daripada papan kekunci."

	msgAskUsername = "Sila masukkan nama pengguna (username) anda:"
	msgAskPassword = "Sila masukkan kata laluan:"
	msgBadLogin    = "Kata laluan salah. Sila /start semula."

	msgMainMenu      = "Sila pilih tindakan:"
	msgMainMenuRetry = "Sila pilih dari papan kekunci."

	msgAskDate        = "Sila masukkan tarikh pilihan (DD/MM/YYYY):"
	msgDateBadFormat  = "Tarikh tidak sah. Sila gunakan format DD/MM/YYYY."
	msgAdminDatePast  = "Tarikh yang dimasukkan tidak sah! Sila masukkan tarikh pada hari ini/akan datang (DD/MM/YYYY):"
	msgAdminDateWkend = "Sila pilih tarikh bekerja (Isnin–Jumaat)."
	msgStaffDatePast  = "Tarikh telah berlalu. Sila pilih tarikh hari ini atau tarikh pada masa hadapan."
	msgStaffDateWkend = "Tarikh jatuh pada hujung minggu. Sila pilih hari bekerja (Isnin–Jumaat)."

	msgAskOfficerUpdate = "Sila pilih pegawai untuk dikemaskini:"
	msgAskOfficerCheck  = "Sila pilih pegawai untuk disemak:"
	msgOfficerRetry     = "Pilihan pegawai tidak sah. Sila cuba sekali lagi."
	msgOfficerRetryKbd  = "Pilihan pegawai tidak sah. Sila pilih dari papan kekunci."

	msgAskLocation   = "Sila pilih lokasi urusan:"
	msgLocationRetry = "Sila pilih KENINGAU atau LUAR DAERAH dari papan kekunci."

	msgAskBusiness = "Nyatakan urusan rasmi tersebut:"

	msgAskMembership   = "Sila nyatakan status keahlian:"
	msgMembershipRetry = "Sila pilih AHLI atau BUKAN AHLI dari papan kekunci."

	msgAskStartTime  = "Nyatakan masa mula (HH:MM):"
	msgAskEndTime    = "Nyatakan masa tamat (HH:MM):"
	msgBadStartTime  = "Format masa tidak sah. Gunakan HH:MM (cth 09:00)."
	msgBadEndTime    = "Format masa tidak sah. Gunakan HH:MM (cth 10:30)."

	msgAskContinue   = "Adakah anda ingin meneruskan kemaskini untuk tarikh atau pegawai lain?"
	msgContinueRetry = "Sila pilih YA atau TIDAK."

	msgSavedCalendarOK   = "Status berjaya dikemaskini dan acara telah ditambah ke Google Calendar."
	msgSavedCalendarFail = "Status berjaya dikemaskini. (Gagal menambah acara ke Calendar — semak konfigurasi.)"
	msgSaveFailed        = "Gagal menyimpan rekod ke Google Sheets. Sila semak konfigurasi."

	msgAskDeleteDate    = "Sila masukkan tarikh rekod yang ingin dipadam (DD/MM/YYYY):"
	msgAskDeleteOfficer = "Sila pilih pegawai:"
	msgNoRecords        = "Tiada rekod untuk tarikh tersebut."
	msgAskDeletePick    = "Sila pilih rekod untuk dipadam:"
	msgDeletePickRetry  = "Pilihan rekod tidak sah. Sila pilih dari papan kekunci."
	msgDeleteConfirm    = "Padam rekod berikut?\n\nTarikh: %s\nPegawai: %s\n%s\n\nTeruskan?"
	msgDeletedOK        = "Rekod telah dipadam."
	msgDeletedCalOK     = "Acara Calendar berkaitan turut dipadam."
	msgDeletedCalNone   = "(Tiada acara Calendar dipadam.)"
	msgDeleteFailed     = "Gagal memadam rekod. Sila cuba lagi."
	msgDeleteAborted    = "Pemadaman dibatalkan."

	msgStaffDateSet = "Tarikh ditetapkan kepada %s. Sila pilih pegawai untuk disemak:"
	msgAskNewDate   = "Sila masukkan tarikh baru (DD/MM/YYYY):"
	msgQueryFailed  = "Gagal membaca rekod dari Google Sheets. Sila cuba lagi."

	msgUpdateDone = "Sesi Kemaskini Ditamatkan. Terima Kasih."
	msgCheckDone  = "Semakan ditamatkan. Terima kasih."
	msgCancelled  = "Sesi Dibatalkan."
	msgIdleHint   = "Sila taip /start untuk memulakan."
)

// recordDelimiter separates rendered record blocks in a multi-row reply.
const recordDelimiter = "\n-----\n"
