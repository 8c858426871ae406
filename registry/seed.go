package registry

// seedAssets is the fixed set InitLedger writes for initial ledger
// population. Re-running InitLedger overwrites these same keys.
var seedAssets = []Asset{
	{ID: "assetcar1", Model: "Tesla Model 3", Color: "white", Owner: "Ajith", Year: 2023, VIN: "5YJ3E1EA7PF000001", EngineType: "electric", Mileage: 1200},
	{ID: "assetcar2", Model: "Toyota Camry", Color: "silver", Owner: "Emma", Year: 2021, VIN: "4T1BF1FK5MU000002", EngineType: "hybrid", Mileage: 24500},
	{ID: "assetcar3", Model: "Ford Mustang", Color: "red", Owner: "Noah", Year: 2019, VIN: "1FA6P8TH4K5000003", EngineType: "petrol", Mileage: 41200},
	{ID: "assetcar4", Model: "Honda Civic", Color: "blue", Owner: "Olivia", Year: 2022, VIN: "2HGFE2F50NH000004", EngineType: "petrol", Mileage: 9800},
	{ID: "assetcar5", Model: "BMW i4", Color: "black", Owner: "Liam", Year: 2024, VIN: "WBY73AW00R7000005", EngineType: "electric", Mileage: 350},
	{ID: "assetcar6", Model: "Volvo XC60", Color: "grey", Owner: "Sophia", Year: 2020, VIN: "YV4102RK1L1000006", EngineType: "diesel", Mileage: 58600},
}
