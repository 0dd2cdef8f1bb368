package corpus

var luaCode = []string{
	`function fibonacci(n)
  if n <= 1 then
    return n
  end
  return fibonacci(n - 1) + fibonacci(n - 2)
end`,
	`local function quicksort(arr)
  if #arr < 2 then return arr end
  local pivot = arr[1]
  local less, greater = {}, {}
  for i = 2, #arr do
    if arr[i] <= pivot then
      table.insert(less, arr[i])
    else
      table.insert(greater, arr[i])
    end
  end
  return quicksort(less) .. {pivot} .. quicksort(greater)
end`,
	`local function factorial(n)
  if n <= 1 then
    return 1
  end
  return n * factorial(n - 1)
end`,
}

var rubyCode = []string{
	`def fibonacci(n)
  return n if n <= 1
  fibonacci(n - 1) + fibonacci(n - 2)
end`,
	`def quicksort(array)
  return array if array.length < 2
  pivot = array[0]
  less = array[1..].select { |x| x <= pivot }
  greater = array[1..].select { |x| x > pivot }
  quicksort(less) + [pivot] + quicksort(greater)
end`,
	`def factorial(n)
  return 1 if n <= 1
  n * factorial(n - 1)
end`,
}

var typescriptCode = []string{
	`function fibonacci(n: number): number {
  if (n <= 1) {
    return n;
  }
  return fibonacci(n - 1) + fibonacci(n - 2);
}`,
	`function quicksort(arr: number[]): number[] {
  if (arr.length < 2) return arr;
  const pivot = arr[0];
  const less = arr.slice(1).filter(x => x <= pivot);
  const greater = arr.slice(1).filter(x => x > pivot);
  return [...quicksort(less), pivot, ...quicksort(greater)];
}`,
	`function factorial(n: number): number {
  if (n <= 1) {
    return 1;
  }
  return n * factorial(n - 1);
}`,
}

var rustCode = []string{
	`fn fibonacci(n: u32) -> u32 {
    if n <= 1 {
        return n;
    }
    fibonacci(n - 1) + fibonacci(n - 2)
}`,
	`fn quicksort(arr: &mut [i32]) {
    if arr.len() <= 1 {
        return;
    }
    let pivot = partition(arr);
    quicksort(&mut arr[0..pivot]);
    quicksort(&mut arr[pivot + 1..]);
}`,
	`fn factorial(n: u32) -> u32 {
    if n <= 1 {
        return 1;
    }
    n * factorial(n - 1)
}`,
}

var pythonCode = []string{
	`def fibonacci(n):
    if n <= 1:
        return n
    return fibonacci(n - 1) + fibonacci(n - 2)`,
	`def quicksort(arr):
    if len(arr) < 2:
        return arr
    pivot = arr[0]
    less = [x for x in arr[1:] if x <= pivot]
    greater = [x for x in arr[1:] if x > pivot]
    return quicksort(less) + [pivot] + quicksort(greater)`,
	`def factorial(n):
    if n <= 1:
        return 1
    return n * factorial(n - 1)`,
	`def bubble_sort(arr):
    n = len(arr)
    for i in range(n):
        for j in range(0, n - i - 1):
            if arr[j] > arr[j + 1]:
                arr[j], arr[j + 1] = arr[j + 1], arr[j]
    return arr`,
}
