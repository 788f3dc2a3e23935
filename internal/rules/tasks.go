package rules

// Task names as they appear on the briefing.
const (
	TaskUpperRoomClose = "16:30 Fecho da sala de cima"
	TaskSideboard      = "16:30 Limpeza e reposição aparador / cadeira bebés"
	TaskRestockPaper   = "16:30 Repor papel (casa de banho)"
	TaskBathroom       = "17:30 Limpeza casa de banho (clientes e staff)"
	TaskGlassMirrors   = "17:30 Limpeza vidros e espelhos"
	TaskSalaClose      = "17:30 Fecho da sala"

	TaskBarPrep     = "Preparação Bar"
	TaskBarRestock  = "Reposições Bar"
	TaskBarMachines = "Limpeza máquinas / leites"
	TaskBarClose    = "Fecho Bar"
	TaskBarFridges  = "Limpeza frigoríficos"
	TaskBarDishes   = "Lavagem loiça bar"
	TaskBarCounter  = "Limpeza bancada / lava-loiça"
)

// Daily area lists. RankBathroom and the restock marker are resolved by
// their own rules.
var salaTasks = []step{
	{TaskUpperRoomClose, RankOpener},
	{TaskSideboard, RankOpener},
	{TaskRestockPaper, RankOpener},
	{TaskBathroom, RankBathroom},
	{TaskGlassMirrors, RankLastExit},
	{TaskSalaClose, RankLastExit},
}

// HACCP chains indexed by group size bucket (0, 1, 2, 3+).
var barHACCPChains = [4][]step{
	nil,
	{
		{TaskBarMachines, RankLastExit},
		{TaskBarClose, RankLastExit},
	},
	{
		{TaskBarFridges, RankFirstExit},
		{TaskBarDishes, RankFirstExit},
		{TaskBarMachines, RankLastExit},
		{TaskBarClose, RankLastExit},
	},
	{
		{TaskBarFridges, RankFirstExit},
		{TaskBarDishes, RankSecondExit},
		{TaskBarCounter, RankSecondExit},
		{TaskBarMachines, RankLastExit},
		{TaskBarClose, RankLastExit},
	},
}

var salaHACCPChains = [4][]step{
	nil,
	{
		{TaskRestockPaper, RankLastExit},
		{TaskBathroom, RankBathroom},
		{TaskSalaClose, RankLastExit},
	},
	{
		{TaskUpperRoomClose, RankOpener},
		{TaskSideboard, RankOpener},
		{TaskRestockPaper, RankOpener},
		{TaskBathroom, RankBathroom},
		{TaskGlassMirrors, RankLastExit},
		{TaskSalaClose, RankLastExit},
	},
	{
		{TaskUpperRoomClose, RankFirstExit},
		{TaskSideboard, RankSecondExit},
		{TaskRestockPaper, RankFirstExit},
		{TaskBathroom, RankBathroom},
		{TaskGlassMirrors, RankSecondExit},
		{TaskSalaClose, RankLastExit},
	},
}
